package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "tutoria/internal/delivery/context"
	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/domain/prompt"
	"tutoria/internal/domain/service"
	"tutoria/internal/errors"
	"tutoria/internal/usecase"

	"go.uber.org/fx"
)

const outcomeSuccess = "success"

// generationService implements usecase.GenerationUsecase.
type generationService struct {
	generator service.ContentGenerator
	extractor service.TextExtractor
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// GenerationServiceParams holds dependencies for generationService, injected by Fx.
type GenerationServiceParams struct {
	fx.In

	Generator service.ContentGenerator
	Extractor service.TextExtractor
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewGenerationService creates the generation use case.
func NewGenerationService(params GenerationServiceParams) usecase.GenerationUsecase {
	return &generationService{
		generator: params.Generator,
		extractor: params.Extractor,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *generationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Summarize returns a Markdown summary of the source. The generated text is returned as-is.
func (srv *generationService) Summarize(ctx context.Context, input *usecase.SummarizeInput) (summary *entity.Summary, err error) {
	defer srv.record(entity.TaskSummarize, input.Source.Kind, &err)

	text, err := srv.resolveSource(ctx, input.Source)
	if err != nil {
		return nil, err
	}

	raw, err := srv.generate(ctx, entity.GenerationRequest{Task: entity.TaskSummarize, Content: text})
	if err != nil {
		return nil, err
	}

	return &entity.Summary{
		Text:           raw,
		OriginalLength: utf8.RuneCountInString(text),
		Source:         input.Source.Kind,
	}, nil
}

// CreateQuiz generates and parses a multiple-choice quiz.
func (srv *generationService) CreateQuiz(ctx context.Context, input *usecase.QuizInput) (quiz *entity.Quiz, err error) {
	defer srv.record(entity.TaskQuiz, input.Source.Kind, &err)

	text, err := srv.resolveSource(ctx, input.Source)
	if err != nil {
		return nil, err
	}

	raw, err := srv.generate(ctx, entity.GenerationRequest{
		Task:    entity.TaskQuiz,
		Content: text,
		Title:   input.Title,
		Count:   input.Count,
	})
	if err != nil {
		return nil, err
	}

	quiz, err = prompt.ParseQuiz(raw, input.Title)
	if err != nil {
		srv.logMalformed(ctx, entity.TaskQuiz, err)

		return nil, err
	}
	quiz.Source = input.Source.Kind

	if len(quiz.Questions) != input.Count {
		srv.log(ctx).Info("Quiz question count differs from request",
			slog.Int("requested", input.Count),
			slog.Int("received", len(quiz.Questions)),
		)
	}

	return quiz, nil
}

// CreateFlashcards generates and parses a flashcard deck.
func (srv *generationService) CreateFlashcards(ctx context.Context, input *usecase.FlashcardsInput) (deck *entity.FlashcardDeck, err error) {
	defer srv.record(entity.TaskFlashcards, input.Source.Kind, &err)

	text, err := srv.resolveSource(ctx, input.Source)
	if err != nil {
		return nil, err
	}

	raw, err := srv.generate(ctx, entity.GenerationRequest{
		Task:    entity.TaskFlashcards,
		Content: text,
		Count:   input.Count,
	})
	if err != nil {
		return nil, err
	}

	cards, err := prompt.ParseFlashcards(raw)
	if err != nil {
		srv.logMalformed(ctx, entity.TaskFlashcards, err)

		return nil, err
	}

	return &entity.FlashcardDeck{Cards: cards, Source: input.Source.Kind}, nil
}

// Answer responds to a student question, optionally grounded on text or PDF context.
func (srv *generationService) Answer(ctx context.Context, input *usecase.AnswerInput) (answer *entity.Answer, err error) {
	kind := input.Context.Kind
	if kind == "" {
		kind = entity.SourceNone
	}
	defer srv.record(entity.TaskAnswer, kind, &err)

	contextText, err := srv.resolveSource(ctx, input.Context)
	if err != nil {
		return nil, err
	}

	contextLength := utf8.RuneCountInString(contextText)
	if kind == entity.SourcePDF && contextLength > entity.MaxContextLength {
		return nil, domainerrors.NewValidationError(
			domainerrors.CodeOutOfBound,
			fmt.Sprintf("Contexto do PDF muito longo. Máximo: %d caracteres", entity.MaxContextLength),
		)
	}

	raw, err := srv.generate(ctx, entity.GenerationRequest{
		Task:     entity.TaskAnswer,
		Question: input.Question,
		Content:  contextText,
	})
	if err != nil {
		return nil, err
	}

	return &entity.Answer{
		Text:          raw,
		HasContext:    kind != entity.SourceNone,
		ContextKind:   kind,
		ContextLength: contextLength,
	}, nil
}

// resolveSource returns the text a request works on. PDF text must contain something besides whitespace.
func (srv *generationService) resolveSource(ctx context.Context, src usecase.Source) (string, error) {
	switch src.Kind {
	case entity.SourceText:
		return src.Text, nil
	case entity.SourceNone, "":
		return "", nil
	case entity.SourcePDF:
		text, err := srv.extractor.Extract(ctx, src.PDF)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", domainerrors.ErrNoExtractableText
		}

		return text, nil
	default:
		return "", errors.Errorf("unknown source kind %q", src.Kind)
	}
}

func (srv *generationService) generate(ctx context.Context, req entity.GenerationRequest) (string, error) {
	p, err := prompt.Build(req)
	if err != nil {
		return "", err
	}

	start := time.Now()
	raw, err := srv.generator.Generate(ctx, p.SystemInstruction, p.UserPrompt)
	elapsed := time.Since(start)
	srv.metrics.ObserveUpstreamLatency(string(req.Task), elapsed)

	if err != nil {
		srv.log(ctx).Warn("Generation request failed",
			slog.String("task", string(req.Task)),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)

		return "", err
	}

	srv.log(ctx).Debug("Generation request completed",
		slog.String("task", string(req.Task)),
		slog.Duration("elapsed", elapsed),
		slog.Int("chars", utf8.RuneCountInString(raw)),
	)

	return raw, nil
}

func (srv *generationService) logMalformed(ctx context.Context, task entity.TaskKind, err error) {
	attrs := []any{slog.String("task", string(task))}
	if malformed, ok := errors.AsType[*domainerrors.MalformedContentError](err); ok {
		attrs = append(attrs, slog.String("reason", malformed.Reason()), slog.String("raw", malformed.Raw()))
	}

	srv.log(ctx).Error("Generated content has unexpected structure", attrs...)
}

func (srv *generationService) record(task entity.TaskKind, source entity.SourceKind, errp *error) {
	outcome := outcomeSuccess
	if *errp != nil {
		outcome = domainerrors.KindOf(*errp).String()
	}

	srv.metrics.ObserveGeneration(string(task), string(source), outcome)
}
