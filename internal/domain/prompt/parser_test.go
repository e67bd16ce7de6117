package prompt

import (
	"testing"

	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizJSON = `{
  "questoes": [
    {
      "pergunta": "Qual é a capital do Brasil?",
      "opcoes": ["A) Rio de Janeiro", "B) Brasília", "C) São Paulo", "D) Salvador"],
      "resposta_correta": "B) Brasília"
    },
    {
      "pergunta": "Quanto é 2 + 2?",
      "opcoes": ["A) 3", "B) 4"],
      "resposta_correta": "b) 4 "
    }
  ]
}`

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "fence on one line", raw: "```json {\"a\":1}```", want: `{"a":1}`},
		{name: "surrounding whitespace", raw: "  \n```json\n{\"a\":1}\n```\n  ", want: `{"a":1}`},
		{name: "no fence", raw: `  {"a":1}  `, want: `{"a":1}`},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, StripFences(got), "stripping must be idempotent")
		})
	}
}

func TestParseQuiz_FencedEqualsUnfenced(t *testing.T) {
	plain, err := ParseQuiz(quizJSON, "Geografia")
	require.NoError(t, err)

	fenced, err := ParseQuiz("```json\n"+quizJSON+"\n```", "Geografia")
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
	assert.Equal(t, "Geografia", plain.Title)
	require.Len(t, plain.Questions, 2)
	assert.Equal(t, "Qual é a capital do Brasil?", plain.Questions[0].Prompt)
	assert.Equal(t, "B) Brasília", plain.Questions[0].CorrectOption)
	assert.Len(t, plain.Questions[1].Options, 2)
}

func TestParseQuiz_EnglishArrayKey(t *testing.T) {
	raw := `{"questions":[{"pergunta":"P","opcoes":["x","y"],"resposta_correta":"Y"}]}`

	quiz, err := ParseQuiz(raw, "")
	require.NoError(t, err)
	assert.Equal(t, "Quiz", quiz.Title)
	assert.Len(t, quiz.Questions, 1)
}

func TestParseQuiz_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{name: "not json", raw: "Aqui está o seu quiz!", reason: "invalid quiz JSON"},
		{name: "missing array", raw: `{"perguntas":[]}`, reason: "missing 'questoes'"},
		{name: "missing prompt", raw: `{"questoes":[{"opcoes":["a"],"resposta_correta":"a"}]}`, reason: "missing 'pergunta'"},
		{name: "missing options", raw: `{"questoes":[{"pergunta":"p","resposta_correta":"a"}]}`, reason: "missing 'opcoes'"},
		{name: "missing answer", raw: `{"questoes":[{"pergunta":"p","opcoes":["a"]}]}`, reason: "missing 'resposta_correta'"},
		{name: "answer not an option", raw: `{"questoes":[{"pergunta":"p","opcoes":["a","b"],"resposta_correta":"c"}]}`, reason: "matches no option"},
		{name: "options wrong type", raw: `{"questoes":[{"pergunta":"p","opcoes":"a","resposta_correta":"a"}]}`, reason: "invalid quiz JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz, err := ParseQuiz(tt.raw, "t")
			require.Error(t, err)
			assert.Nil(t, quiz)

			malformed, ok := errors.AsType[*domainerrors.MalformedContentError](err)
			require.True(t, ok)
			assert.Equal(t, tt.raw, malformed.Raw())
			assert.Contains(t, malformed.Reason(), tt.reason)
			assert.Equal(t, domainerrors.KindMalformedContent, domainerrors.KindOf(err))
		})
	}
}

func TestParseFlashcards(t *testing.T) {
	raw := "```json\n{\"flashcards\":[{\"frente\":\"Mitose\",\"verso\":\"Divisão celular\"},{\"frente\":\"DNA\",\"verso\":\"Ácido desoxirribonucleico\"}]}\n```"

	cards, err := ParseFlashcards(raw)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Mitose", cards[0].Front)
	assert.Equal(t, "Ácido desoxirribonucleico", cards[1].Back)
}

func TestParseFlashcards_MissingArrayKeepsRawText(t *testing.T) {
	raw := `{"cards":[{"frente":"a","verso":"b"}]}`

	cards, err := ParseFlashcards(raw)
	require.Error(t, err)
	assert.Nil(t, cards)

	malformed, ok := errors.AsType[*domainerrors.MalformedContentError](err)
	require.True(t, ok)
	assert.Equal(t, raw, malformed.Raw())
	assert.Contains(t, malformed.Details(), raw)
	assert.Equal(t, 500, malformed.HTTPCode())
}

func TestParseFlashcards_BlankSide(t *testing.T) {
	_, err := ParseFlashcards(`{"flashcards":[{"frente":"a","verso":"  "}]}`)

	malformed, ok := errors.AsType[*domainerrors.MalformedContentError](err)
	require.True(t, ok)
	assert.Contains(t, malformed.Reason(), "missing 'verso'")
}
