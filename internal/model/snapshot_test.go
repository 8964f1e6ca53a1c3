package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSnapshotJSON(t *testing.T) {
	valid := []byte(`{"sales": [], "products": [{"id":"p1"}], "globalCash": "10"}`)
	assert.NoError(t, ValidateSnapshotJSON(valid))

	// Leading whitespace before the bracket is fine.
	spaced := []byte(`{"sales":   [  ], "products": [] }`)
	assert.NoError(t, ValidateSnapshotJSON(spaced))
}

func TestValidateSnapshotJSON_RejectsMissingCollections(t *testing.T) {
	cases := map[string]string{
		"no sales":        `{"products": []}`,
		"no products":     `{"sales": []}`,
		"sales not list":  `{"sales": {}, "products": []}`,
		"sales is string": `{"sales": "[]", "products": []}`,
		"empty object":    `{}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateSnapshotJSON([]byte(raw)), ErrInvalidSnapshot)
		})
	}

	assert.Error(t, ValidateSnapshotJSON([]byte(`not json at all`)))
}

func TestSnapshotRoundTripKeepsDecimalsExact(t *testing.T) {
	snap := DefaultSnapshot()
	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var back Snapshot
	require.NoError(t, json.Unmarshal(raw, &back))

	require.Len(t, back.Inventory, len(snap.Inventory))
	for i := range snap.Inventory {
		assert.True(t, back.Inventory[i].Quantity.Equal(snap.Inventory[i].Quantity),
			"inventory %s", snap.Inventory[i].ID)
	}
	assert.True(t, back.GlobalCash.Equal(snap.GlobalCash))
}

func TestDefaultSnapshotHasReservedEntries(t *testing.T) {
	snap := DefaultSnapshot()

	var corte *Product
	for i := range snap.Products {
		if snap.Products[i].ID == ByproductProductID {
			corte = &snap.Products[i]
		}
	}
	require.NotNil(t, corte, "the cut/yapa menu entry is part of the factory catalog")
	assert.True(t, corte.Byproduct())
	assert.True(t, corte.Price.IsZero())

	for _, id := range []string{NapkinItemID, PlateLargeItemID, PlateSmallItemID} {
		found := false
		for _, item := range snap.Inventory {
			if item.ID == id {
				found = true
			}
		}
		assert.True(t, found, "reserved inventory id %s must exist", id)
	}
}
