// Package apierror holds the error envelopes the Deli Bross API returns to its
// clients. Handler errors surface as a single human-readable Detail string in
// Spanish, the language of the front of house; validator failures additionally
// carry a field-by-field breakdown so the UI can mark the offending inputs.
package apierror

// APIError is the envelope for every 4xx/5xx response.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FromErr wraps a service error. Service messages are already written for the
// operator (reglas, insumos, ventas), so the error text goes out as-is.
func FromErr(err error) *APIError {
	return &APIError{Detail: err.Error()}
}

// ValidationError reports binding/validation failures, one message per field.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
