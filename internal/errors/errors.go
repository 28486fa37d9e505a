package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound            = NewAppError("NOT_FOUND", "Data tidak ditemukan", http.StatusNotFound)
	ErrBadRequest          = NewAppError("BAD_REQUEST", "Permintaan tidak valid", http.StatusBadRequest)
	ErrInternalServer      = NewAppError("INTERNAL_SERVER_ERROR", "Terjadi kesalahan pada server", http.StatusInternalServerError)
	ErrConflict            = NewAppError("CONFLICT", "Data sudah ada", http.StatusConflict)
	ErrValidation          = NewAppError("VALIDATION_ERROR", "Data tidak valid", http.StatusBadRequest)
	ErrDatabase            = NewAppError("DATABASE_ERROR", "Terjadi kesalahan pada basis data", http.StatusInternalServerError)
	ErrUserNotFound        = NewAppError("USER_NOT_FOUND", "Pengguna tidak ditemukan", http.StatusNotFound)
	ErrTransactionNotFound = NewAppError("TRANSACTION_NOT_FOUND", "Transaksi tidak ditemukan", http.StatusNotFound)
	ErrSubcategoryNotFound = NewAppError("SUBCATEGORY_NOT_FOUND", "Subkategori tidak ditemukan", http.StatusNotFound)
	ErrRatioNotFound       = NewAppError("RATIO_NOT_FOUND", "Rasio tidak ditemukan", http.StatusNotFound)
	ErrEvaluationNotFound  = NewAppError("EVALUATION_NOT_FOUND", "Hasil perhitungan tidak ditemukan", http.StatusNotFound)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Permintaan dibatalkan oleh klien", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Terjadi kesalahan yang tidak diketahui", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "Gagal menjalankan operasi basis data", http.StatusInternalServerError)
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s tidak ditemukan", resource),
		StatusCode: http.StatusNotFound,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		translatedField := translateFieldName(fieldErr.Field())
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translatedField,
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Terdapat kesalahan pada data yang dikirim",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldLower := strings.ToLower(field)
	fieldMap := map[string]string{
		"amount":        "jumlah",
		"subcategoryid": "subkategori",
		"date":          "tanggal",
		"startdate":     "tanggal awal",
		"enddate":       "tanggal akhir",
		"description":   "deskripsi",
		"userid":        "pengguna",
		"name":          "nama",
		"email":         "email",
	}
	if translated, ok := fieldMap[fieldLower]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", fieldName)
	case "email":
		return "Email tidak valid"
	case "min":
		return fmt.Sprintf("%s minimal %s karakter", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s maksimal %s karakter", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s harus lebih besar atau sama dengan %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s harus lebih kecil atau sama dengan %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s harus lebih besar dari %s", fieldName, fe.Param())
	case "lt":
		return fmt.Sprintf("%s harus lebih kecil dari %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s harus berupa tanggal yang valid", fieldName)
	case "numeric":
		return fmt.Sprintf("%s harus berupa angka", fieldName)
	default:
		return fmt.Sprintf("Validasi '%s' gagal untuk %s", fe.Tag(), fieldName)
	}
}
