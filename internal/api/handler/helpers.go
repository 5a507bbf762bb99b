package handler

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/social-media-os-api/pkg/apiErrors"
	"github.com/vfg2006/social-media-os-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New(validator.WithRequiredStructEnabled())

const maxBodyBytes = 1 << 20

// decodeBody lê e valida o corpo JSON. Em caso de falha a resposta de erro já foi escrita.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "JSON inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		apiErrors.WriteValidationError(w, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithField("error", err.Error()).Error("Erro ao codificar resposta")
	}
}
