// Package validator adapts go-playground/validator to echo and turns the first failing rule
// into a client-facing validation error.
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	tagPresent  = "present"
	tagNotBlank = "notblank"
)

// phase orders failures: a missing field is reported before an empty one, and an empty one
// before any bound.
type phase int

const (
	phasePresence phase = iota
	phaseEmpty
	phaseBound
	phaseOther
)

func phaseOf(tag string) phase {
	switch tag {
	case tagPresent, "required":
		return phasePresence
	case tagNotBlank:
		return phaseEmpty
	case "max", "min", "lte", "gte":
		return phaseBound
	default:
		return phaseOther
	}
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that names fields by their json (or form) tag.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(key), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	// Presence is decided by the pointer itself: a nil field never reaches this function.
	_ = v.RegisterValidation(tagPresent, func(validator.FieldLevel) bool { return true })
	_ = v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{validate: v}
}

// Validate returns nil or a validation AppError for the earliest failing phase.
// Within a phase, fields are reported in declaration order.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	sorted := make([]validator.FieldError, len(fieldErrs))
	copy(sorted, fieldErrs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return phaseOf(sorted[a].Tag()) < phaseOf(sorted[b].Tag())
	})

	return toAppError(sorted[0])
}

func toAppError(fe validator.FieldError) error {
	field := fe.Field()
	msgs, known := fieldMessages[field]

	switch phaseOf(fe.Tag()) {
	case phasePresence:
		return domainerrors.NewValidationError(
			domainerrors.CodeMissingField,
			fmt.Sprintf("Campo '%s' não fornecido", field),
		)
	case phaseEmpty:
		if known && msgs.empty != "" {
			return domainerrors.NewValidationError(domainerrors.CodeEmptyField, msgs.empty)
		}

		return domainerrors.NewValidationError(
			domainerrors.CodeEmptyField,
			fmt.Sprintf("Campo '%s' não pode estar vazio", field),
		)
	case phaseBound:
		if known && msgs.bound != nil {
			return domainerrors.NewValidationError(domainerrors.CodeOutOfBound, msgs.bound(fe.Param()))
		}
	}

	return domainerrors.NewValidationError(
		domainerrors.CodeValidationError,
		fmt.Sprintf("Campo '%s' inválido", field),
	)
}

// fieldMessage holds the pt-BR wording for one request field.
type fieldMessage struct {
	empty string
	bound func(param string) string
}

func tooLong(noun, adjective string) func(string) string {
	return func(param string) string {
		return fmt.Sprintf("%s muito %s. Máximo: %s caracteres", noun, adjective, param)
	}
}

func between(noun string, minimum, maximum int) func(string) string {
	return func(string) string {
		return fmt.Sprintf("Número de %s deve estar entre %d e %d", noun, minimum, maximum)
	}
}

var fieldMessages = map[string]fieldMessage{
	"texto": {
		empty: "Texto não pode estar vazio",
		bound: tooLong("Texto", "longo"),
	},
	"conteudo": {
		empty: "Conteúdo não pode estar vazio",
		bound: tooLong("Conteúdo", "longo"),
	},
	"pergunta": {
		empty: "Pergunta não pode estar vazia",
		bound: tooLong("Pergunta", "longa"),
	},
	"contexto": {
		empty: "Contexto não pode estar vazio",
		bound: tooLong("Contexto", "longo"),
	},
	"numeroQuestoes": {
		bound: between("questões", entity.MinQuestions, entity.MaxQuestions),
	},
	"numeroCards": {
		bound: between("flashcards", entity.MinFlashcards, entity.MaxFlashcards),
	},
}
