package dto

import (
	"encoding/json"
	"testing"
	"time"

	"tutoria/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummaryResponse_CountsCharacters(t *testing.T) {
	resp := NewSummaryResponse(&entity.Summary{Text: "ação", OriginalLength: 40, Source: entity.SourcePDF})

	assert.Equal(t, 4, resp.TamanhoResumo)
	assert.Equal(t, 40, resp.TamanhoOriginal)
	assert.Equal(t, "pdf", resp.Fonte)
}

func TestNewQuizResponse_JSONShape(t *testing.T) {
	resp := NewQuizResponse(&entity.Quiz{
		Title: "Células",
		Questions: []entity.Question{
			{Prompt: "Qual organela produz energia?", Options: []string{"A) Mitocôndria", "B) Ribossomo"}, CorrectOption: "A) Mitocôndria"},
		},
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"titulo": "Células",
		"questoes": [{
			"textoPergunta": "Qual organela produz energia?",
			"opcoesResposta": ["A) Mitocôndria", "B) Ribossomo"],
			"respostaCorreta": "A) Mitocôndria"
		}]
	}`, string(raw))
}

func TestNewFlashcardsResponse_Total(t *testing.T) {
	resp := NewFlashcardsResponse(&entity.FlashcardDeck{
		Cards:  []entity.Flashcard{{Front: "f1", Back: "v1"}, {Front: "f2", Back: "v2"}},
		Source: entity.SourceText,
	})

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "texto", resp.Fonte)
	assert.Equal(t, FlashcardResponse{FrentePergunta: "f2", VersoResposta: "v2"}, resp.Flashcards[1])
}

func TestNewAnswerResponse_OmitsLengthWithoutContext(t *testing.T) {
	raw, err := json.Marshal(NewAnswerResponse(&entity.Answer{Text: "42", ContextKind: entity.SourceNone}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"resposta":"42","temContexto":false,"tipoContexto":"nenhum"}`, string(raw))
}

func TestNewAIHealthResponse(t *testing.T) {
	at := time.UnixMilli(1714564800000)

	assert.Equal(t, AIHealthResponse{Status: "ok", Service: "AI Service", Timestamp: 1714564800000}, NewAIHealthResponse(at))
}
