package apierror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrKeepsServiceMessage(t *testing.T) {
	e := FromErr(errors.New("regla desconocida: Hornear Pan"))
	assert.Equal(t, "regla desconocida: Hornear Pan", e.Detail)
}

func TestNewValidationDetail(t *testing.T) {
	e := NewValidation(map[string]string{"multiplier": "required"})
	assert.Equal(t, "Error de validación", e.Detail)
	assert.Equal(t, "required", e.Fields["multiplier"])
}
