package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpenseInternal(t *testing.T) {
	internal := Expense{Description: "INTERNAL_CONVERT_3_PIECES"}
	assert.True(t, internal.Internal())

	normal := Expense{Description: "Compra de gas"}
	assert.False(t, normal.Internal())

	// Prefix match is exact, not fuzzy.
	tricky := Expense{Description: "Pago interno al proveedor"}
	assert.False(t, tricky.Internal())
}

func TestExpensePieces_StructuredFieldWins(t *testing.T) {
	n := 5
	e := Expense{Description: "INTERNAL_CONVERT_2_PIECES", ConvertedPieces: &n}
	assert.Equal(t, 5, e.Pieces(), "structured field beats the description")
}

func TestExpensePieces_LegacyDescription(t *testing.T) {
	e := Expense{Description: "INTERNAL_CONVERT_12_PIECES", Amount: decimal.Zero}
	assert.Equal(t, 12, e.Pieces())

	plain := Expense{Description: "Compra de gas", Amount: decimal.NewFromInt(20)}
	assert.Equal(t, 0, plain.Pieces())
}

func TestConversionDescription(t *testing.T) {
	desc := ConversionDescription(7)
	assert.Equal(t, "INTERNAL_CONVERT_7_PIECES", desc)

	// Round trip through the legacy parser.
	e := Expense{Description: desc}
	assert.Equal(t, 7, e.Pieces())
	assert.True(t, e.Internal())
}

func TestIsByproductRef(t *testing.T) {
	assert.True(t, IsByproductRef("e_corte", ""))
	assert.True(t, IsByproductRef("p_x", "Corte de Pollo"))
	assert.True(t, IsByproductRef("p_x", "YAPA especial"))
	assert.False(t, IsByproductRef("c_pollo_simple", "Pollo Simple"))
}

func TestProductByproduct(t *testing.T) {
	structured := Product{ID: "p_nuevo", Name: "Sobras", IsByproduct: true}
	assert.True(t, structured.Byproduct())

	legacy := Product{ID: "p_viejo", Name: "Yapa del día"}
	assert.True(t, legacy.Byproduct())

	regular := Product{ID: "c_fingers", Name: "Fingers"}
	assert.False(t, regular.Byproduct())
}
