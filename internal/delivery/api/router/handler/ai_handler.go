// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"tutoria/internal/delivery/api/dto"
	"tutoria/internal/delivery/api/response"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/errors"
	"tutoria/internal/usecase"

	"github.com/labstack/echo/v4"
)

// normalizer is implemented by request bodies that trim text or apply defaults before validation.
type normalizer interface {
	Normalize()
}

// AIHandler serves the study endpoints under /api/ai.
type AIHandler struct {
	uc  usecase.GenerationUsecase
	now func() time.Time
}

// NewAIHandler is the constructor for AIHandler, injected by Fx.
func NewAIHandler(uc usecase.GenerationUsecase) *AIHandler {
	return &AIHandler{uc: uc, now: time.Now}
}

// bindJSON decodes, normalizes and validates a JSON body.
func bindJSON(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidJSON.WithDetails(err.Error())
	}

	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}

	return errors.WithStack(c.Validate(req))
}

// SummarizeText handles POST /api/ai/resumir/texto.
func (h *AIHandler) SummarizeText(c echo.Context) error {
	var req dto.SummarizeTextRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	summary, err := h.uc.Summarize(c.Request().Context(), &usecase.SummarizeInput{
		Source: usecase.TextSource(*req.Texto),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewSummaryResponse(summary))
}

// SummarizePDF handles POST /api/ai/resumir/pdf.
func (h *AIHandler) SummarizePDF(c echo.Context) error {
	if err := parseMultipart(c); err != nil {
		return err
	}

	data, err := readPDF(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.Summarize(c.Request().Context(), &usecase.SummarizeInput{
		Source: usecase.PDFSource(data),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewSummaryResponse(summary))
}

// QuizText handles POST /api/ai/quiz/texto.
func (h *AIHandler) QuizText(c echo.Context) error {
	var req dto.QuizTextRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	quiz, err := h.uc.CreateQuiz(c.Request().Context(), &usecase.QuizInput{
		Source: usecase.TextSource(*req.Conteudo),
		Title:  req.Title(),
		Count:  *req.NumeroQuestoes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewQuizResponse(quiz))
}

// QuizPDF handles POST /api/ai/quiz/pdf.
func (h *AIHandler) QuizPDF(c echo.Context) error {
	if err := parseMultipart(c); err != nil {
		return err
	}

	form, err := dto.ParseQuizPDFForm(c.Request())
	if err != nil {
		return err
	}
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	data, err := readPDF(c)
	if err != nil {
		return err
	}

	quiz, err := h.uc.CreateQuiz(c.Request().Context(), &usecase.QuizInput{
		Source: usecase.PDFSource(data),
		Title:  form.Title(),
		Count:  *form.NumeroQuestoes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewQuizResponse(quiz))
}

// FlashcardsText handles POST /api/ai/flashcards/texto.
func (h *AIHandler) FlashcardsText(c echo.Context) error {
	var req dto.FlashcardsTextRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	deck, err := h.uc.CreateFlashcards(c.Request().Context(), &usecase.FlashcardsInput{
		Source: usecase.TextSource(*req.Conteudo),
		Count:  *req.NumeroCards,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewFlashcardsResponse(deck))
}

// FlashcardsPDF handles POST /api/ai/flashcards/pdf.
func (h *AIHandler) FlashcardsPDF(c echo.Context) error {
	if err := parseMultipart(c); err != nil {
		return err
	}

	form, err := dto.ParseFlashcardsPDFForm(c.Request())
	if err != nil {
		return err
	}
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	data, err := readPDF(c)
	if err != nil {
		return err
	}

	deck, err := h.uc.CreateFlashcards(c.Request().Context(), &usecase.FlashcardsInput{
		Source: usecase.PDFSource(data),
		Count:  *form.NumeroCards,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewFlashcardsResponse(deck))
}

// Ask handles POST /api/ai/perguntar.
func (h *AIHandler) Ask(c echo.Context) error {
	var req dto.QuestionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	return h.answer(c, *req.Pergunta, usecase.NoSource())
}

// AskWithContext handles POST /api/ai/perguntar/contexto.
func (h *AIHandler) AskWithContext(c echo.Context) error {
	var req dto.QuestionWithContextRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	return h.answer(c, *req.Pergunta, usecase.TextSource(*req.Contexto))
}

// AskWithPDF handles POST /api/ai/perguntar/pdf.
func (h *AIHandler) AskWithPDF(c echo.Context) error {
	if err := parseMultipart(c); err != nil {
		return err
	}

	form := dto.ParseQuestionPDFForm(c.Request())
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	data, err := readPDF(c)
	if err != nil {
		return err
	}

	return h.answer(c, *form.Pergunta, usecase.PDFSource(data))
}

func (h *AIHandler) answer(c echo.Context, question string, source usecase.Source) error {
	answer, err := h.uc.Answer(c.Request().Context(), &usecase.AnswerInput{
		Question: question,
		Context:  source,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewAnswerResponse(answer))
}

// Health handles GET /api/ai/health.
func (h *AIHandler) Health(c echo.Context) error {
	return response.OK(c, dto.NewAIHealthResponse(h.now()))
}
