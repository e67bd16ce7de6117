package prompt

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
)

var (
	// leadingFencePattern matches an opening code fence with an optional language tag.
	leadingFencePattern = regexp.MustCompile("^```[A-Za-z0-9_-]*[ \t]*\\r?\\n?")
	// trailingFencePattern matches a closing code fence at the very end.
	trailingFencePattern = regexp.MustCompile("\\r?\\n?```$")
)

// StripFences removes one surrounding Markdown code fence and the whitespace around it.
// Text without fences is returned trimmed, so applying it twice changes nothing.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingFencePattern.ReplaceAllString(s, "")
	s = trailingFencePattern.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

type quizPayload struct {
	Questoes  *[]questionPayload `json:"questoes"`
	Questions *[]questionPayload `json:"questions"`
}

type questionPayload struct {
	Pergunta        *string   `json:"pergunta"`
	Opcoes          *[]string `json:"opcoes"`
	RespostaCorreta *string   `json:"resposta_correta"`
}

type deckPayload struct {
	Flashcards *[]cardPayload `json:"flashcards"`
}

type cardPayload struct {
	Frente *string `json:"frente"`
	Verso  *string `json:"verso"`
}

// ParseQuiz decodes the model's quiz reply. Every entry must carry a prompt, a non-empty
// option list and a correct option that matches one of its options; otherwise the whole
// reply is rejected with the raw text attached.
func ParseQuiz(raw, title string) (*entity.Quiz, error) {
	var payload quizPayload
	if err := json.Unmarshal([]byte(StripFences(raw)), &payload); err != nil {
		return nil, domainerrors.NewMalformedContentError(raw, "invalid quiz JSON: "+err.Error())
	}

	entries := payload.Questoes
	if entries == nil {
		entries = payload.Questions
	}
	if entries == nil {
		return nil, domainerrors.NewMalformedContentError(raw, "missing 'questoes' array")
	}

	questions := make([]entity.Question, 0, len(*entries))
	for i, entry := range *entries {
		question, reason := entry.toQuestion()
		if reason != "" {
			return nil, domainerrors.NewMalformedContentError(raw, fmt.Sprintf("question %d: %s", i, reason))
		}
		questions = append(questions, question)
	}

	if strings.TrimSpace(title) == "" {
		title = entity.DefaultQuizTitle
	}

	return &entity.Quiz{
		Title:     title,
		Questions: questions,
	}, nil
}

func (p questionPayload) toQuestion() (entity.Question, string) {
	if p.Pergunta == nil || strings.TrimSpace(*p.Pergunta) == "" {
		return entity.Question{}, "missing 'pergunta'"
	}
	if p.Opcoes == nil || len(*p.Opcoes) == 0 {
		return entity.Question{}, "missing 'opcoes'"
	}
	if p.RespostaCorreta == nil || strings.TrimSpace(*p.RespostaCorreta) == "" {
		return entity.Question{}, "missing 'resposta_correta'"
	}

	correct := strings.TrimSpace(*p.RespostaCorreta)
	matched := false
	for _, option := range *p.Opcoes {
		if strings.EqualFold(strings.TrimSpace(option), correct) {
			matched = true

			break
		}
	}
	if !matched {
		return entity.Question{}, fmt.Sprintf("'resposta_correta' %q matches no option", correct)
	}

	options := make([]string, len(*p.Opcoes))
	copy(options, *p.Opcoes)

	return entity.Question{
		Prompt:        *p.Pergunta,
		Options:       options,
		CorrectOption: *p.RespostaCorreta,
	}, ""
}

// ParseFlashcards decodes the model's flashcard reply. Cards keep the order the model produced.
func ParseFlashcards(raw string) ([]entity.Flashcard, error) {
	var payload deckPayload
	if err := json.Unmarshal([]byte(StripFences(raw)), &payload); err != nil {
		return nil, domainerrors.NewMalformedContentError(raw, "invalid flashcards JSON: "+err.Error())
	}

	if payload.Flashcards == nil {
		return nil, domainerrors.NewMalformedContentError(raw, "missing 'flashcards' array")
	}

	cards := make([]entity.Flashcard, 0, len(*payload.Flashcards))
	for i, card := range *payload.Flashcards {
		switch {
		case card.Frente == nil || strings.TrimSpace(*card.Frente) == "":
			return nil, domainerrors.NewMalformedContentError(raw, fmt.Sprintf("flashcard %d: missing 'frente'", i))
		case card.Verso == nil || strings.TrimSpace(*card.Verso) == "":
			return nil, domainerrors.NewMalformedContentError(raw, fmt.Sprintf("flashcard %d: missing 'verso'", i))
		}

		cards = append(cards, entity.Flashcard{Front: *card.Frente, Back: *card.Verso})
	}

	return cards, nil
}
