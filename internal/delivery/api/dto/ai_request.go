// Package dto holds the request and response bodies of the HTTP API.
package dto

import (
	"strconv"
	"strings"

	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
)

// Pointer fields distinguish an absent field from an empty one. Normalize trims text and
// applies defaults; it runs before validation so bounds apply to the trimmed text.

type SummarizeTextRequest struct {
	Texto *string `json:"texto" validate:"present,notblank,max=100000"`
}

func (r *SummarizeTextRequest) Normalize() {
	trim(r.Texto)
}

type QuizTextRequest struct {
	Conteudo       *string `json:"conteudo" validate:"present,notblank,max=100000"`
	Titulo         *string `json:"titulo"`
	NumeroQuestoes *int    `json:"numeroQuestoes" validate:"omitnil,min=1,max=20"`
}

func (r *QuizTextRequest) Normalize() {
	trim(r.Conteudo)
	r.NumeroQuestoes = defaultInt(r.NumeroQuestoes, entity.DefaultQuestions)
}

// Title returns the trimmed title or the default one.
func (r *QuizTextRequest) Title() string {
	return quizTitle(r.Titulo)
}

type FlashcardsTextRequest struct {
	Conteudo    *string `json:"conteudo" validate:"present,notblank,max=100000"`
	NumeroCards *int    `json:"numeroCards" validate:"omitnil,min=1,max=50"`
}

func (r *FlashcardsTextRequest) Normalize() {
	trim(r.Conteudo)
	r.NumeroCards = defaultInt(r.NumeroCards, entity.DefaultFlashcards)
}

type QuestionRequest struct {
	Pergunta *string `json:"pergunta" validate:"present,notblank,max=1000"`
}

func (r *QuestionRequest) Normalize() {
	trim(r.Pergunta)
}

type QuestionWithContextRequest struct {
	Pergunta *string `json:"pergunta" validate:"present,notblank,max=1000"`
	Contexto *string `json:"contexto" validate:"present,notblank,max=50000"`
}

func (r *QuestionWithContextRequest) Normalize() {
	trim(r.Pergunta)
	trim(r.Contexto)
}

// QuizPDFForm holds the non-file fields of a multipart quiz upload.
type QuizPDFForm struct {
	Titulo         *string `form:"titulo"`
	NumeroQuestoes *int    `form:"numeroQuestoes" validate:"omitnil,min=1,max=20"`
}

// Title returns the trimmed title or the default one.
func (f *QuizPDFForm) Title() string {
	return quizTitle(f.Titulo)
}

// FlashcardsPDFForm holds the non-file fields of a multipart flashcards upload.
type FlashcardsPDFForm struct {
	NumeroCards *int `form:"numeroCards" validate:"omitnil,min=1,max=50"`
}

// QuestionPDFForm holds the non-file fields of a multipart question upload.
type QuestionPDFForm struct {
	Pergunta *string `form:"pergunta" validate:"present,notblank,max=1000"`
}

// FormValues abstracts multipart form access so forms can be parsed without echo.
type FormValues interface {
	FormValue(name string) string
}

var (
	errInvalidQuestionCount = domainerrors.NewValidationError(
		domainerrors.CodeInvalidNumber,
		"Número de questões inválido",
	)
	errInvalidCardCount = domainerrors.NewValidationError(
		domainerrors.CodeInvalidNumber,
		"Número de flashcards inválido",
	)
)

// ParseQuizPDFForm reads titulo and numeroQuestoes. A count that is not an integer fails immediately.
func ParseQuizPDFForm(values FormValues) (*QuizPDFForm, error) {
	count, err := parseCount(values.FormValue("numeroQuestoes"), entity.DefaultQuestions, errInvalidQuestionCount)
	if err != nil {
		return nil, err
	}

	return &QuizPDFForm{
		Titulo:         optionalString(values.FormValue("titulo")),
		NumeroQuestoes: count,
	}, nil
}

// ParseFlashcardsPDFForm reads numeroCards. A count that is not an integer fails immediately.
func ParseFlashcardsPDFForm(values FormValues) (*FlashcardsPDFForm, error) {
	count, err := parseCount(values.FormValue("numeroCards"), entity.DefaultFlashcards, errInvalidCardCount)
	if err != nil {
		return nil, err
	}

	return &FlashcardsPDFForm{NumeroCards: count}, nil
}

// ParseQuestionPDFForm reads and trims pergunta.
func ParseQuestionPDFForm(values FormValues) *QuestionPDFForm {
	form := &QuestionPDFForm{Pergunta: optionalString(values.FormValue("pergunta"))}
	trim(form.Pergunta)

	return form
}

func parseCount(raw string, fallback int, invalid error) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalid
	}

	return &n, nil
}

// optionalString treats an empty form value as absent; multipart cannot tell them apart.
func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func defaultInt(value *int, fallback int) *int {
	if value != nil {
		return value
	}

	return &fallback
}

func quizTitle(title *string) string {
	if title == nil || strings.TrimSpace(*title) == "" {
		return entity.DefaultQuizTitle
	}

	return strings.TrimSpace(*title)
}
