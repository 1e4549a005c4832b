package m_vehicle_detail

import (
	"encoding/json"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/fixtures"
)

func TestToDetail(t *testing.T) {
	want := fixtures.Details()["1"]

	// Simulate what the client returns for a JSON column: a generic document.
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	var generic interface{}
	require.NoError(t, json.Unmarshal(raw, &generic))

	d := &Data{VehicleKey: "1", Payload: spanner.NullJSON{Value: generic, Valid: true}}
	got, err := d.ToDetail()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestToDetail_NullPayload(t *testing.T) {
	_, err := (&Data{VehicleKey: "3"}).ToDetail()
	assert.Error(t, err)
}

func TestFromDetail(t *testing.T) {
	d := FromDetail(fixtures.Details()["2"])
	assert.Equal(t, "2", d.VehicleKey)
	assert.True(t, d.Payload.Valid)
	assert.NotNil(t, NewModel().InsertMut(d))
}
