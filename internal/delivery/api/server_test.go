package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"tutoria/config"
	apimiddleware "tutoria/internal/delivery/api/middleware"
	"tutoria/internal/delivery/api/router"
	"tutoria/internal/delivery/api/router/handler"
	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/infra/metrics"
	mockSvc "tutoria/internal/mocks/service"
	mockUsecase "tutoria/internal/mocks/usecase"
	"tutoria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type serverFixtures struct {
	echo       *echo.Echo
	generation *mockUsecase.MockGenerationUsecase
	users      *mockUsecase.MockUserUsecase
	tokens     *mockSvc.MockTokenService
}

func createTestServer(t *testing.T) serverFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "30M"
	cfg.HTTP.CORS.AllowOrigins = []string{"*"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	generation := mockUsecase.NewMockGenerationUsecase(t)
	users := mockUsecase.NewMockUserUsecase(t)
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().
		Verify(validToken).
		Return(&entity.Identity{UserID: 7, Email: "ana@example.com"}, nil).
		Maybe()

	gate := apimiddleware.NewRouteGate(tokens, metrics.NewNoop(), logger)
	e := NewEcho(cfg, logger, gate, router.RouterParams{
		AIHandler:      handler.NewAIHandler(generation),
		AccountHandler: handler.NewAccountHandler(users),
		Config:         cfg,
	})

	return serverFixtures{echo: e, generation: generation, users: users, tokens: tokens}
}

func (fx serverFixtures) do(method, path, contentType string, body io.Reader, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx serverFixtures) postJSON(path string, body any, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)

	return fx.do(http.MethodPost, path, echo.MIMEApplicationJSON, bytes.NewReader(raw), token)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

// multipartBody builds a form with an optional pdf part of the given content type.
func multipartBody(t *testing.T, fields map[string]string, fileType string, file []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="pdf"; filename="aula.pdf"`)
		header.Set("Content-Type", fileType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func sampleQuiz(n int) *entity.Quiz {
	quiz := &entity.Quiz{Title: "Quiz", Source: entity.SourceText}
	for range n {
		quiz.Questions = append(quiz.Questions, entity.Question{
			Prompt:        "Quanto é 1+1?",
			Options:       []string{"A) um", "B) dois"},
			CorrectOption: "B) dois",
		})
	}

	return quiz
}

func TestServer_HealthIsPublic(t *testing.T) {
	fx := createTestServer(t)

	for _, token := range []string{"", "garbage"} {
		rec := fx.do(http.MethodGet, "/health", "", nil, token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	}
	fx.tokens.AssertNotCalled(t, "Verify", "garbage")
}

func TestServer_ProtectedWithoutToken(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.postJSON("/api/ai/quiz/texto", map[string]any{"conteudo": "x"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token não fornecido"}`, rec.Body.String())
}

func TestServer_ProtectedWithInvalidToken(t *testing.T) {
	fx := createTestServer(t)
	fx.tokens.EXPECT().Verify("forged").Return(nil, domainerrors.ErrUnauthenticated).Once()

	rec := fx.do(http.MethodGet, "/me", "", nil, "forged")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token inválido ou expirado"}`, rec.Body.String())
}

func TestServer_PreflightSkipsGate(t *testing.T) {
	fx := createTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/ai/quiz/texto", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)
}

func TestServer_QuizQuestionCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "zero", count: 0},
		{name: "above maximum", count: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)

			rec := fx.postJSON("/api/ai/quiz/texto", map[string]any{
				"conteudo":       "A mitocôndria produz ATP.",
				"numeroQuestoes": tt.count,
			}, validToken)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, "Número de questões deve estar entre 1 e 20", body["erro"])
			assert.Contains(t, body, "timestamp")
		})
	}
}

func TestServer_QuizReturnsRequestedQuestions(t *testing.T) {
	fx := createTestServer(t)
	fx.generation.EXPECT().
		CreateQuiz(mock.Anything, &usecase.QuizInput{
			Source: usecase.TextSource("A mitocôndria produz ATP."),
			Title:  "Quiz",
			Count:  5,
		}).
		Return(sampleQuiz(5), nil).
		Once()

	rec := fx.postJSON("/api/ai/quiz/texto", map[string]any{
		"conteudo":       "  A mitocôndria produz ATP.  ",
		"numeroQuestoes": 5,
		"titulo":         " ",
	}, validToken)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "Quiz", body["titulo"])
	assert.Len(t, body["questoes"], 5)
}

func TestServer_SummaryTextLength(t *testing.T) {
	t.Run("one over the limit", func(t *testing.T) {
		fx := createTestServer(t)

		rec := fx.postJSON("/api/ai/resumir/texto", map[string]any{"texto": strings.Repeat("a", 100001)}, validToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec)["erro"], "100000")
	})

	t.Run("at the limit reaches the generator", func(t *testing.T) {
		fx := createTestServer(t)
		text := strings.Repeat("a", 100000)
		fx.generation.EXPECT().
			Summarize(mock.Anything, &usecase.SummarizeInput{Source: usecase.TextSource(text)}).
			Return(&entity.Summary{Text: "# Resumo", OriginalLength: 100000, Source: entity.SourceText}, nil).
			Once()

		rec := fx.postJSON("/api/ai/resumir/texto", map[string]any{"texto": text}, validToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"resumo":"# Resumo","tamanhoOriginal":100000,"tamanhoResumo":8,"fonte":"texto"}`, rec.Body.String())
	})
}

func TestServer_InvalidJSON(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPost, "/api/ai/perguntar", echo.MIMEApplicationJSON, strings.NewReader("{pergunta"), validToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "JSON inválido", decode(t, rec)["erro"])
}

func TestServer_UpstreamFailureIs503(t *testing.T) {
	fx := createTestServer(t)
	fx.generation.EXPECT().
		Answer(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewUpstreamError(io.ErrUnexpectedEOF)).
		Once()

	rec := fx.postJSON("/api/ai/perguntar", map[string]any{"pergunta": "O que é DNA?"}, validToken)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Erro ao comunicar com serviço de IA", decode(t, rec)["erro"])
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/api/ai/desconhecida", "", nil, validToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rota não encontrada: /api/ai/desconhecida", decode(t, rec)["erro"])
}

func TestServer_QuizPDF(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")

	t.Run("uploads the file with form fields", func(t *testing.T) {
		fx := createTestServer(t)
		fx.generation.EXPECT().
			CreateQuiz(mock.Anything, &usecase.QuizInput{
				Source: usecase.PDFSource(pdf),
				Title:  "Genética",
				Count:  3,
			}).
			Return(sampleQuiz(3), nil).
			Once()

		body, contentType := multipartBody(t, map[string]string{"titulo": "Genética", "numeroQuestoes": "3"}, "application/pdf", pdf)
		rec := fx.do(http.MethodPost, "/api/ai/quiz/pdf", contentType, body, validToken)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Len(t, decode(t, rec)["questoes"], 3)
	})

	tests := []struct {
		name     string
		fields   map[string]string
		fileType string
		file     []byte
		wantMsg  string
	}{
		{name: "count not a number", fields: map[string]string{"numeroQuestoes": "abc"}, fileType: "application/pdf", file: pdf, wantMsg: "Número de questões inválido"},
		{name: "count out of range", fields: map[string]string{"numeroQuestoes": "21"}, fileType: "application/pdf", file: pdf, wantMsg: "Número de questões deve estar entre 1 e 20"},
		{name: "no file", fields: map[string]string{}, wantMsg: "PDF não enviado"},
		{name: "not a pdf", fields: map[string]string{}, fileType: "text/plain", file: []byte("oi"), wantMsg: "Arquivo deve ser um PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)

			body, contentType := multipartBody(t, tt.fields, tt.fileType, tt.file)
			rec := fx.do(http.MethodPost, "/api/ai/quiz/pdf", contentType, body, validToken)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec)["erro"])
		})
	}
}

func TestServer_SummarizePDFUploadLimit(t *testing.T) {
	t.Run("over the limit", func(t *testing.T) {
		fx := createTestServer(t)

		body, contentType := multipartBody(t, nil, "application/pdf", make([]byte, entity.MaxUploadBytes+1))
		rec := fx.do(http.MethodPost, "/api/ai/resumir/pdf", contentType, body, validToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Arquivo muito grande. Máximo: 25.0 MB", decode(t, rec)["erro"])
		fx.generation.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	})

	t.Run("exactly at the limit", func(t *testing.T) {
		fx := createTestServer(t)
		fx.generation.EXPECT().
			Summarize(mock.Anything, mock.MatchedBy(func(in *usecase.SummarizeInput) bool {
				return in.Source.Kind == entity.SourcePDF && len(in.Source.PDF) == entity.MaxUploadBytes
			})).
			Return(&entity.Summary{Text: "resumo", OriginalLength: 10, Source: entity.SourcePDF}, nil).
			Once()

		body, contentType := multipartBody(t, nil, "application/pdf", make([]byte, entity.MaxUploadBytes))
		rec := fx.do(http.MethodPost, "/api/ai/resumir/pdf", contentType, body, validToken)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "resumo", decode(t, rec)["resumo"])
	})
}

func TestServer_AskWithPDFRequiresQuestion(t *testing.T) {
	fx := createTestServer(t)

	body, contentType := multipartBody(t, map[string]string{}, "application/pdf", []byte("%PDF"))
	rec := fx.do(http.MethodPost, "/api/ai/perguntar/pdf", contentType, body, validToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Campo 'pergunta' não fornecido", decode(t, rec)["erro"])
}

func TestServer_LoginWrongPassword(t *testing.T) {
	fx := createTestServer(t)
	fx.users.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "errada"}).
		Return(nil, domainerrors.ErrInvalidCredentials).
		Once()

	rec := fx.postJSON("/login", map[string]string{"email": "ana@example.com", "senha": "errada"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Credenciais inválidas"}`, rec.Body.String())
}

func TestServer_LoginReturnsToken(t *testing.T) {
	fx := createTestServer(t)
	fx.users.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(&usecase.LoginOutput{Token: &entity.IssuedToken{Token: "signed"}, User: &entity.User{ID: 7}}, nil).
		Once()

	rec := fx.postJSON("/login", map[string]string{"email": "ana@example.com", "senha": "certa"}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed"}`, rec.Body.String())
}

func TestServer_RegisterDuplicateEmail(t *testing.T) {
	fx := createTestServer(t)
	fx.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

	rec := fx.postJSON("/register", map[string]string{"nome": "Ana", "email": "ana@example.com", "senha": "x"}, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Email já cadastrado"}`, rec.Body.String())
}

func TestServer_MeUsesIdentityFromToken(t *testing.T) {
	fx := createTestServer(t)
	fx.users.EXPECT().
		GetProfile(mock.Anything, int64(7)).
		Return(&entity.User{ID: 7, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}, nil).
		Once()

	rec := fx.do(http.MethodGet, "/me", "", nil, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"nome":"Ana","email":"ana@example.com"}`, rec.Body.String())
}

func TestServer_Logout(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPost, "/logout", "", nil, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mensagem":"Logout realizado com sucesso."}`, rec.Body.String())
}

func TestServer_Teste(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/teste", "", nil, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mensagem":"TutorIA API está rodando!","versao":"1.0.0"}`, rec.Body.String())
}
