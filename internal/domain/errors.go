package domain

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every Validate method; validator caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// gt=0 alone lets +Inf through, which JSON cannot encode.
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	}); err != nil {
		panic(err)
	}
	return v
}

// ErrorKind tags the failure classes a caller has to tell apart.
type ErrorKind string

const (
	KindInvalidInput      ErrorKind = "invalid_input"
	KindConfiguration     ErrorKind = "configuration_error"
	KindGenerationFailure ErrorKind = "generation_failure"
	KindStorageCorruption ErrorKind = "storage_corruption"
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its kind.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrConfiguration     = errors.New("configuration error")
	ErrGenerationFailure = errors.New("generation failure")
	ErrStorageCorruption = errors.New("storage corruption")
)

// User-facing messages.
const (
	MsgInvalidRequest     = "Dados do usuário ausentes ou inválidos."
	MsgInvalidProfile     = "Perfil inválido: informe nome, peso, altura e data de nascimento."
	MsgMissingAPIKey      = "A chave de API do Google não está configurada no ambiente do servidor."
	MsgModelFailure       = "Falha na comunicação com o modelo de IA. Por favor, tente novamente mais tarde."
	MsgCommunication      = "Falha na comunicação com o servidor. Por favor, tente novamente mais tarde."
	MsgGenerationRejected = "Desculpe, não foi possível gerar seu plano de treino. Tente novamente."
)

// Error is a tagged failure carrying a message fit for the user and the
// underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewError builds a tagged error.
func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidInput) and friends match by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrGenerationFailure:
		return e.Kind == KindGenerationFailure
	case ErrStorageCorruption:
		return e.Kind == KindStorageCorruption
	}
	return false
}

// UserMessage returns the user-facing text of err, or fallback when err does
// not carry one.
func UserMessage(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
