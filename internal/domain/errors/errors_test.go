package errors

import (
	"net/http"
	"testing"

	"tutoria/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindUpstream, http.StatusServiceUnavailable},
		{KindMalformedContent, http.StatusInternalServerError},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnauthenticated, KindOf(errors.Wrap(ErrUnauthenticated, "verify")))
	assert.Equal(t, KindUpstream, KindOf(NewUpstreamError(errors.New("timeout"))))
	assert.Equal(t, KindMalformedContent, KindOf(NewMalformedContentError("x", "bad")))
	assert.Equal(t, KindInternal, KindOf(NewDatabaseExecuteError(errors.New("conn"), "insert")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestBaseError_IsIgnoresDetails(t *testing.T) {
	withDetails := ErrUpstreamUnavailable.WithDetails("status 429")

	assert.True(t, errors.Is(withDetails, ErrUpstreamUnavailable))
	assert.Equal(t, "Erro ao comunicar com serviço de IA: status 429", withDetails.Error())
	assert.Equal(t, "Erro ao comunicar com serviço de IA", withDetails.Message())

	// Same kind and code, different message.
	assert.False(t, errors.Is(ErrNameNotProvided, ErrPasswordNotProvided))
	assert.False(t, errors.Is(ErrNotPDF, ErrUnreadablePDF))
}

func TestNewUpstreamError_KeepsCauseInDetails(t *testing.T) {
	err := NewUpstreamError(errors.New("googleapi: Error 429: quota"))

	appErr, ok := errors.AsType[AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "googleapi: Error 429: quota", appErr.Details())
	assert.NotContains(t, appErr.Message(), "quota")
}

func TestMalformedContentError(t *testing.T) {
	err := NewMalformedContentError("```json\n{}\n```", "missing 'flashcards' array")

	assert.Equal(t, "```json\n{}\n```", err.Raw())
	assert.Equal(t, "Erro interno do servidor", err.Message())
	assert.Contains(t, err.Details(), "raw: ```json")
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

func TestErrPasswordTooLong_IsClientError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrPasswordTooLong.HTTPCode())
	assert.Equal(t, "Senha muito longa. Máximo: 72 bytes", ErrPasswordTooLong.Message())
}
