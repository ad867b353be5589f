package errs

import (
	"errors"
	"net/http"
)

type ErrorType string

const (
	ErrInputValidation  ErrorType = "input_validation_error"  // ข้อมูลที่ส่งมาไม่ถูกต้อง
	ErrBusinessRule     ErrorType = "business_rule_error"     // ผิดกฎทางธุรกิจ
	ErrResourceNotFound ErrorType = "resource_not_found"      // ไม่พบข้อมูล
	ErrOperationFailed  ErrorType = "operation_failed"        // ทำงานไม่สำเร็จ
)

type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(errType ErrorType, message string) *AppError {
	return &AppError{Type: errType, Message: message}
}

func InputValidationError(message string) error {
	return New(ErrInputValidation, message)
}

func BusinessRuleError(message string) error {
	return New(ErrBusinessRule, message)
}

func ResourceNotFoundError(message string) error {
	return New(ErrResourceNotFound, message)
}

func OperationFailedError(message string) error {
	return New(ErrOperationFailed, message)
}

// แปลงประเภทของ error เป็น http status code
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case ErrInputValidation:
		return http.StatusBadRequest
	case ErrBusinessRule:
		return http.StatusUnprocessableEntity
	case ErrResourceNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
