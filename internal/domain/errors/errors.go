package errors

import (
	"fmt"
	"net/http"

	"tutoria/internal/domain/entity"
	"tutoria/internal/errors"
	"tutoria/internal/util"
)

// Kind classifies every error the service can surface to a client.
// The set is closed: each kind maps to exactly one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindUpstream
	KindMalformedContent
)

// HTTPStatus returns the response status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// String returns a short label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream"
	case KindMalformedContent:
		return "malformed"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message (pt-BR)
	Details() string   // Server-side diagnostics, never sent to clients
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPStatus()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying diagnostic details
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is ignores details, so copies made by WithDetails still satisfy errors.Is
// against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.errorCode == t.errorCode && e.message == t.message
}

// Validation error codes
const (
	CodeMissingField    = "MISSING_FIELD"
	CodeEmptyField      = "EMPTY_FIELD"
	CodeOutOfBound      = "OUT_OF_BOUND"
	CodeInvalidNumber   = "INVALID_NUMBER"
	CodeInvalidFile     = "INVALID_FILE"
	CodeNoExtractable   = "NO_EXTRACTABLE_TEXT"
	CodeInvalidJSON     = "INVALID_JSON"
	CodeValidationError = "VALIDATION_FAILED"
)

// NewValidationError creates a 400 error with a message already formatted for the client.
func NewValidationError(code, message string) *BaseError {
	return NewBaseError(KindValidation, code, message, "")
}

// Predefined error types
var (
	// Gate errors
	ErrTokenNotProvided = NewBaseError(
		KindUnauthenticated,
		"TOKEN_NOT_PROVIDED",
		"Token não fornecido",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		"INVALID_TOKEN",
		"Token inválido ou expirado",
		"",
	)

	// Account errors
	ErrInvalidCredentials = NewBaseError(
		KindUnauthenticated,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas",
		"",
	)

	ErrMissingRegistrationFields = NewBaseError(
		KindValidation,
		CodeMissingField,
		"Todos os campos são obrigatórios",
		"",
	)

	ErrMissingLoginFields = NewBaseError(
		KindValidation,
		CodeMissingField,
		"Email e senha são obrigatórios",
		"",
	)

	ErrNameNotProvided = NewBaseError(
		KindValidation,
		CodeMissingField,
		"Nome não informado",
		"",
	)

	ErrPasswordNotProvided = NewBaseError(
		KindValidation,
		CodeMissingField,
		"Senha não informada",
		"",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"Usuário não encontrado",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		"USER_ALREADY_EXISTS",
		"Email já cadastrado",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		KindInternal,
		"USER_CREATION_FAILED",
		"Falha ao cadastrar usuário",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		KindValidation,
		CodeOutOfBound,
		fmt.Sprintf("Senha muito longa. Máximo: %d bytes", entity.MaxPasswordBytes),
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"Erro ao processar senha",
		"",
	)

	// Upload and extraction errors
	ErrPDFNotProvided = NewBaseError(
		KindValidation,
		CodeMissingField,
		"PDF não enviado",
		"",
	)

	ErrNotPDF = NewBaseError(
		KindValidation,
		CodeInvalidFile,
		"Arquivo deve ser um PDF",
		"",
	)

	ErrUploadTooLarge = NewBaseError(
		KindValidation,
		CodeOutOfBound,
		"Arquivo muito grande. Máximo: "+util.FormatBytes(entity.MaxUploadBytes),
		"",
	)

	ErrUnreadablePDF = NewBaseError(
		KindValidation,
		CodeInvalidFile,
		"PDF inválido ou corrompido",
		"",
	)

	ErrNoExtractableText = NewBaseError(
		KindValidation,
		CodeNoExtractable,
		"PDF vazio ou sem texto extraível",
		"",
	)

	ErrInvalidJSON = NewBaseError(
		KindValidation,
		CodeInvalidJSON,
		"JSON inválido",
		"",
	)

	// Upstream errors
	ErrUpstreamUnavailable = NewBaseError(
		KindUpstream,
		"UPSTREAM_UNAVAILABLE",
		"Erro ao comunicar com serviço de IA",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		KindNotFound,
		"ROUTE_NOT_FOUND",
		"Rota não encontrada",
		"",
	)
)

// NewUpstreamError reports a failed call to the generation API. The cause is kept for logs only.
func NewUpstreamError(cause error) error {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	return errors.WithStack(ErrUpstreamUnavailable.WithDetails(details))
}

// MalformedContentError reports generated text that does not match the expected structure.
// The raw text is retained verbatim for server-side diagnostics.
type MalformedContentError struct {
	raw    string
	reason string
}

// NewMalformedContentError creates a malformed upstream content error
func NewMalformedContentError(raw, reason string) *MalformedContentError {
	return &MalformedContentError{raw: raw, reason: reason}
}

// Error implements the error interface
func (e *MalformedContentError) Error() string {
	return "malformed upstream content: " + e.reason
}

// Raw returns the generated text exactly as received
func (e *MalformedContentError) Raw() string {
	return e.raw
}

// Reason returns the structural defect that was found
func (e *MalformedContentError) Reason() string {
	return e.reason
}

// Kind returns KindMalformedContent
func (e *MalformedContentError) Kind() Kind {
	return KindMalformedContent
}

// HTTPCode returns the HTTP status code
func (e *MalformedContentError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *MalformedContentError) ErrorCode() string {
	return "MALFORMED_UPSTREAM_CONTENT"
}

// Message returns the user-facing message
func (e *MalformedContentError) Message() string {
	return "Erro interno do servidor"
}

// Details returns the reason and the raw text
func (e *MalformedContentError) Details() string {
	return e.reason + "\nraw: " + e.raw
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns KindInternal
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Erro interno do servidor"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf classifies any error. Errors outside the AppError family are internal.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
