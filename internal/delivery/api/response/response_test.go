package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAIError_WritesTimestampInMillis(t *testing.T) {
	frozen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	original := now
	now = func() time.Time { return frozen }
	t.Cleanup(func() { now = original })

	c, rec := newContext()

	require.NoError(t, AIError(c, http.StatusBadRequest, "Texto não pode estar vazio"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Texto não pode estar vazio", body["erro"])
	assert.InDelta(t, float64(frozen.UnixMilli()), body["timestamp"], 0)
	assert.Len(t, body, 2)
}

func TestError_WritesSingleField(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusUnauthorized, "Token não fornecido"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token não fornecido"}`, rec.Body.String())
}

func TestMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Message(c, "Logout realizado com sucesso."))

	assert.JSONEq(t, `{"mensagem":"Logout realizado com sucesso."}`, rec.Body.String())
}

func TestIsAIPath(t *testing.T) {
	assert.True(t, IsAIPath("/api/ai/quiz/texto"))
	assert.True(t, IsAIPath("/api/desconhecida"))
	assert.False(t, IsAIPath("/me"))
	assert.False(t, IsAIPath("/api"))
}
