package apiErrors

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token inválido ou ausente
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Corpo não é um JSON válido
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Campo com formato inválido
	ErrNotFound            = "VAL_004"
	ErrMethodNotAllowed    = "VAL_005"

	// Erros do servidor
	ErrInternalServer     = "SRV_001"
	ErrServiceUnavailable = "SRV_002" // Dependência opcional não configurada
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrServiceUnavailable:    http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// FieldError descreve um campo rejeitado pela validação do corpo
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))

	if err := json.NewEncoder(w).Encode(APIError{Code: code, Message: message, Details: details}); err != nil {
		logrus.WithField("error", err.Error()).Warn("Erro ao escrever resposta de erro")
	}
}

// WriteValidationError traduz os erros do validator em VAL_002 (campo ausente) ou VAL_003
func WriteValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		WriteError(w, ErrInvalidRequest, err.Error(), nil)
		return
	}

	code := ErrInvalidFormat
	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			code = ErrMissingRequiredData
		}
		fields = append(fields, FieldError{Field: fe.Namespace(), Rule: fe.Tag()})
	}

	WriteError(w, code, "Requisição inválida", fields)
}
