package errors

import (
	"net/http"

	"loja/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Portuguese, matching the
// language of the mobile client.
var (
	// Session-related errors
	ErrSessionTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_TOKEN_INVALID",
		"Sessão inválida ou expirada",
		"",
	)

	ErrIdentityTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_TOKEN_INVALID",
		"Token de identidade inválido",
		"",
	)

	// Record-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Loja não encontrada",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produto não encontrado",
		"",
	)

	ErrSKUNotFound = NewBaseError(
		http.StatusNotFound,
		"SKU_NOT_FOUND",
		"SKU de estoque não encontrado",
		"",
	)

	ErrSaleNotFound = NewBaseError(
		http.StatusNotFound,
		"SALE_NOT_FOUND",
		"Venda não encontrada",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	ErrInvalidCapacity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CAPACITY",
		"A capacidade deve ser um número inteiro positivo",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"O preço deve ser um número positivo",
		"",
	)

	ErrCostExceedsPrice = NewBaseError(
		http.StatusBadRequest,
		"COST_EXCEEDS_PRICE",
		"O preço de venda deve ser maior que o custo unitário",
		"",
	)

	ErrInvalidUnits = NewBaseError(
		http.StatusBadRequest,
		"INVALID_UNITS",
		"A quantidade de unidades deve ser positiva",
		"",
	)

	ErrEmptyMovement = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_MOVEMENT",
		"Nenhuma mudança de estoque registrada",
		"",
	)

	// Sale status errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Mudança de status não permitida",
		"",
	)

	// Destructive-action gate errors
	ErrPassphraseRejected = NewBaseError(
		http.StatusForbidden,
		"PASSPHRASE_REJECTED",
		"Senha de administrador incorreta",
		"",
	)

	// QR code errors
	ErrQRCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"QRCODE_INVALID",
		"Código QR inválido",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)
)

// RecordStoreError represents a failed call against the remote record store,
// implementing the AppError interface
type RecordStoreError struct {
	err     error
	details string
}

// NewRecordStoreError creates a record-store-related error
func NewRecordStoreError(err error, details string) AppError {
	return &RecordStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *RecordStoreError) Error() string {
	return errors.Wrap(e.err, "record store call failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *RecordStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *RecordStoreError) ErrorCode() string {
	return "RECORD_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *RecordStoreError) Message() string {
	return "Não foi possível acessar os dados salvos"
}

// Details returns detailed error information
func (e *RecordStoreError) Details() string {
	return e.details
}
