package usecase

import (
	"context"

	"tutoria/internal/domain/entity"
)

// Source is the material a generation request works on: inline text, an uploaded PDF, or nothing.
type Source struct {
	Kind entity.SourceKind
	Text string
	PDF  []byte
}

// TextSource wraps already validated inline text.
func TextSource(text string) Source {
	return Source{Kind: entity.SourceText, Text: text}
}

// PDFSource wraps the bytes of an uploaded PDF.
func PDFSource(data []byte) Source {
	return Source{Kind: entity.SourcePDF, PDF: data}
}

// NoSource marks a question asked without context.
func NoSource() Source {
	return Source{Kind: entity.SourceNone}
}

type SummarizeInput struct {
	Source Source
}

type QuizInput struct {
	Source Source
	Title  string
	Count  int
}

type FlashcardsInput struct {
	Source Source
	Count  int
}

type AnswerInput struct {
	Question string
	Context  Source
}

// GenerationUsecase produces study material. Inputs are expected to have passed request validation;
// checks that depend on extracted PDF text happen here.
type GenerationUsecase interface {
	Summarize(ctx context.Context, input *SummarizeInput) (*entity.Summary, error)
	CreateQuiz(ctx context.Context, input *QuizInput) (*entity.Quiz, error)
	CreateFlashcards(ctx context.Context, input *FlashcardsInput) (*entity.FlashcardDeck, error)
	Answer(ctx context.Context, input *AnswerInput) (*entity.Answer, error)
}
