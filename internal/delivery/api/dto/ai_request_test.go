package dto

import (
	"testing"

	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formValues map[string]string

func (f formValues) FormValue(name string) string {
	return f[name]
}

func TestParseQuizPDFForm(t *testing.T) {
	tests := []struct {
		name      string
		values    formValues
		wantCount int
		wantTitle string
		wantErr   string
	}{
		{name: "defaults", values: formValues{}, wantCount: entity.DefaultQuestions, wantTitle: "Quiz"},
		{name: "explicit", values: formValues{"numeroQuestoes": " 8 ", "titulo": " Biologia "}, wantCount: 8, wantTitle: "Biologia"},
		{name: "blank title", values: formValues{"titulo": "   "}, wantCount: entity.DefaultQuestions, wantTitle: "Quiz"},
		{name: "not a number", values: formValues{"numeroQuestoes": "cinco"}, wantErr: "Número de questões inválido"},
		{name: "decimal", values: formValues{"numeroQuestoes": "2.5"}, wantErr: "Número de questões inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := ParseQuizPDFForm(tt.values)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, *form.NumeroQuestoes)
			assert.Equal(t, tt.wantTitle, form.Title())
		})
	}
}

func TestParseFlashcardsPDFForm(t *testing.T) {
	form, err := ParseFlashcardsPDFForm(formValues{})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultFlashcards, *form.NumeroCards)

	_, err = ParseFlashcardsPDFForm(formValues{"numeroCards": "x"})
	assert.True(t, errors.Is(err, errInvalidCardCount))
	assert.Equal(t, "Número de flashcards inválido", err.Error())
}

func TestParseQuestionPDFForm(t *testing.T) {
	assert.Nil(t, ParseQuestionPDFForm(formValues{}).Pergunta)
	assert.Equal(t, "O que é DNA?", *ParseQuestionPDFForm(formValues{"pergunta": "  O que é DNA? "}).Pergunta)
}

func TestNormalize(t *testing.T) {
	quiz := &QuizTextRequest{Conteudo: ptr("  texto  ")}
	quiz.Normalize()
	assert.Equal(t, "texto", *quiz.Conteudo)
	assert.Equal(t, entity.DefaultQuestions, *quiz.NumeroQuestoes)
	assert.Equal(t, entity.DefaultQuizTitle, quiz.Title())

	cards := &FlashcardsTextRequest{NumeroCards: ptr(3)}
	cards.Normalize()
	assert.Nil(t, cards.Conteudo)
	assert.Equal(t, 3, *cards.NumeroCards)
}

func ptr[T any](v T) *T {
	return &v
}
