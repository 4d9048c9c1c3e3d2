// Package apierror fornece os envelopes de erro padronizados da API.
// Todo erro devolvido ao cliente passa por aqui, garantindo consistência e
// evitando vazamento de detalhes internos (stack traces, erros de driver).
package apierror

// APIError é o envelope canônico de toda resposta 4xx/5xx.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError agrega erros de validação por campo.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
