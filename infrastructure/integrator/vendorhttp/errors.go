package vendorhttp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// VendorError representa uma rejeição explícita da plataforma, diferente de falha de transporte
type VendorError struct {
	Vendor     string
	StatusCode int
	Message    string
}

func (e *VendorError) Error() string {
	return e.Message
}

// IsVendorRejection indica se o erro veio da plataforma e não da rede
func IsVendorRejection(err error) bool {
	var vendorErr *VendorError
	return errors.As(err, &vendorErr)
}

// Check interpreta o envelope de erro da plataforma.
// Objeto de erro estruturado e lista de erros têm precedência e valem mesmo com status 2xx;
// depois campos genéricos de mensagem, só para status fora de 2xx; por fim a mensagem padrão.
func (r *Response) Check(vendor, fallback string) error {
	var envelope map[string]any
	_ = json.Unmarshal(r.Body, &envelope)

	if message, ok := structuredError(envelope); ok {
		return &VendorError{Vendor: vendor, StatusCode: r.StatusCode, Message: message}
	}

	if r.Success() {
		return nil
	}

	if message := genericMessage(envelope); message != "" {
		return &VendorError{Vendor: vendor, StatusCode: r.StatusCode, Message: message}
	}

	return &VendorError{Vendor: vendor, StatusCode: r.StatusCode, Message: fallback}
}

func structuredError(envelope map[string]any) (string, bool) {
	if envelope == nil {
		return "", false
	}

	if errObj, ok := envelope["error"].(map[string]any); ok {
		code := errObj["code"]
		if isOKCode(code) {
			return "", false
		}
		if message := stringField(errObj, "message"); message != "" {
			return message, true
		}
		if codeStr, ok := code.(string); ok && codeStr != "" {
			return codeStr, true
		}
	}

	if list, ok := envelope["errors"].([]any); ok && len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			for _, key := range []string{"detail", "message", "title"} {
				if message := stringField(first, key); message != "" {
					return message, true
				}
			}
		}
	}

	return "", false
}

func genericMessage(envelope map[string]any) string {
	if envelope == nil {
		return ""
	}
	for _, key := range []string{"message", "detail", "error_description", "error"} {
		if message := stringField(envelope, key); message != "" {
			return message
		}
	}
	return ""
}

func isOKCode(code any) bool {
	switch c := code.(type) {
	case string:
		return strings.EqualFold(c, "ok")
	default:
		return false
	}
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
