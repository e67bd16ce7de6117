package dto

import (
	"time"
	"unicode/utf8"

	"tutoria/internal/domain/entity"
)

type SummaryResponse struct {
	Resumo          string `json:"resumo"`
	TamanhoOriginal int    `json:"tamanhoOriginal"`
	TamanhoResumo   int    `json:"tamanhoResumo"`
	Fonte           string `json:"fonte"`
}

type QuestionResponse struct {
	TextoPergunta   string   `json:"textoPergunta"`
	OpcoesResposta  []string `json:"opcoesResposta"`
	RespostaCorreta string   `json:"respostaCorreta"`
}

type QuizResponse struct {
	Titulo   string             `json:"titulo"`
	Questoes []QuestionResponse `json:"questoes"`
}

type FlashcardResponse struct {
	FrentePergunta string `json:"frentePergunta"`
	VersoResposta  string `json:"versoResposta"`
}

type FlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
	Total      int                 `json:"total"`
	Fonte      string              `json:"fonte"`
}

type AnswerResponse struct {
	Resposta        string `json:"resposta"`
	TemContexto     bool   `json:"temContexto"`
	TipoContexto    string `json:"tipoContexto"`
	TamanhoContexto int    `json:"tamanhoContexto,omitempty"`
}

type AIHealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type VersionResponse struct {
	Mensagem string `json:"mensagem"`
	Versao   string `json:"versao"`
}

func NewSummaryResponse(summary *entity.Summary) SummaryResponse {
	return SummaryResponse{
		Resumo:          summary.Text,
		TamanhoOriginal: summary.OriginalLength,
		TamanhoResumo:   utf8.RuneCountInString(summary.Text),
		Fonte:           string(summary.Source),
	}
}

func NewQuizResponse(quiz *entity.Quiz) QuizResponse {
	questions := make([]QuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, QuestionResponse{
			TextoPergunta:   q.Prompt,
			OpcoesResposta:  q.Options,
			RespostaCorreta: q.CorrectOption,
		})
	}

	return QuizResponse{Titulo: quiz.Title, Questoes: questions}
}

func NewFlashcardsResponse(deck *entity.FlashcardDeck) FlashcardsResponse {
	cards := make([]FlashcardResponse, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		cards = append(cards, FlashcardResponse{FrentePergunta: card.Front, VersoResposta: card.Back})
	}

	return FlashcardsResponse{
		Flashcards: cards,
		Total:      len(cards),
		Fonte:      string(deck.Source),
	}
}

func NewAnswerResponse(answer *entity.Answer) AnswerResponse {
	return AnswerResponse{
		Resposta:        answer.Text,
		TemContexto:     answer.HasContext,
		TipoContexto:    string(answer.ContextKind),
		TamanhoContexto: answer.ContextLength,
	}
}

func NewAIHealthResponse(now time.Time) AIHealthResponse {
	return AIHealthResponse{
		Status:    "ok",
		Service:   "AI Service",
		Timestamp: now.UnixMilli(),
	}
}
