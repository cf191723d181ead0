package errors

import (
	"net/http"

	"dispatch/internal/errors"
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

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Predefined error types
var (
	// Subscriber-related errors
	ErrSubscriberNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIBER_NOT_FOUND",
		"Абонент не найден",
		"",
	)

	ErrSubscriberAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SUBSCRIBER_ALREADY_EXISTS",
		"Абонент с таким номером договора уже существует",
		"",
	)

	ErrSubscriberAddressIncomplete = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIBER_ADDRESS_INCOMPLETE",
		"Укажите район или улицу",
		"",
	)

	// Executor-related errors
	ErrExecutorNotFound = NewBaseError(
		http.StatusNotFound,
		"EXECUTOR_NOT_FOUND",
		"Исполнитель не найден",
		"",
	)

	ErrExecutorAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EXECUTOR_ALREADY_EXISTS",
		"Исполнитель с таким Telegram ID уже существует",
		"",
	)

	// Task-related errors
	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Задача не найдена",
		"",
	)

	ErrAssignmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSIGNMENT_NOT_FOUND",
		"Исполнитель не назначен на задачу",
		"",
	)

	ErrAssignmentAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ASSIGNMENT_ALREADY_EXISTS",
		"Исполнитель уже назначен на задачу",
		"",
	)

	// Work time errors
	ErrWorkTimeNotFound = NewBaseError(
		http.StatusNotFound,
		"WORK_TIME_NOT_FOUND",
		"Запись рабочего времени не найдена",
		"",
	)

	ErrWorkTimeAlreadyExists = NewBaseError(
		http.StatusConflict,
		"WORK_TIME_ALREADY_EXISTS",
		"Запись для этого исполнителя на эту дату уже существует",
		"",
	)

	// Geocoder errors
	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"Ошибка геокодера",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Требуется авторизация",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Недействительный или просроченный токен",
		"",
	)

	ErrInvalidInitData = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_INIT_DATA",
		"Недействительные данные Telegram",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Нет доступа",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Ошибка проверки входных данных",
		"",
	)

	ErrInvalidDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE",
		"Неверный формат даты",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Ошибка транзакции базы данных",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Внутренняя ошибка сервера",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ресурс не найден",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Конфликт данных",
		"",
	)
)

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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Ошибка выполнения запроса к базе данных"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
