package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransmission(t *testing.T) {
	for _, want := range Transmissions() {
		got, err := ParseTransmission(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTransmission("automatic")
	assert.ErrorIs(t, err, ErrInvalidTransmission)
}

func TestParseSortOrder(t *testing.T) {
	t.Run("every order round trips through its token", func(t *testing.T) {
		for _, o := range SortOrders() {
			got, err := ParseSortOrder(o.String())
			require.NoError(t, err)
			assert.Equal(t, o, got)
		}
	})

	t.Run("empty token is relevance", func(t *testing.T) {
		got, err := ParseSortOrder("")
		require.NoError(t, err)
		assert.Equal(t, SortRelevance, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := ParseSortOrder("cheapest")
		assert.ErrorIs(t, err, ErrInvalidSortOrder)
	})

	t.Run("table is exhaustive", func(t *testing.T) {
		assert.Len(t, SortOrders(), len(sortSpecs))
		for _, o := range SortOrders() {
			assert.True(t, o.Valid(), o.String())
		}
	})
}

func TestSortOrder_Spec(t *testing.T) {
	assert.Equal(t, KeyNone, SortRelevance.Spec().Key)
	assert.Equal(t, SortSpec{Token: "year_newest", Label: "Year (newest)", Key: KeyYear, Descending: true}, SortYearNewest.Spec())
	assert.Equal(t, "relevance", SortOrder(-1).String())
}

func TestSortOrder_TextEncoding(t *testing.T) {
	var got struct {
		Sort SortOrder `json:"sort"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"sort":"model_az"}`), &got))
	assert.Equal(t, SortModelAZ, got.Sort)

	err := json.Unmarshal([]byte(`{"sort":"bogus"}`), &got)
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestVehicleSummary_JSONOmitsAbsentOptionals(t *testing.T) {
	raw, err := json.Marshal(VehicleSummary{Key: "7", Brand: "Nissan", Model: "Kicks", Year: 2022, Price: 95000})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"key":"7","brand":"Nissan","model":"Kicks","year":2022,"price":95000,"mainImageUrl":""}`,
		string(raw))
}

func TestVehicleDetail_PrimaryPhoto(t *testing.T) {
	t.Run("exactly one primary", func(t *testing.T) {
		d := VehicleDetail{Photos: []Photo{{URL: "a"}, {URL: "b", Primary: true}}}
		p, err := d.PrimaryPhoto()
		require.NoError(t, err)
		assert.Equal(t, "b", p.URL)
	})

	t.Run("no primary", func(t *testing.T) {
		d := VehicleDetail{Photos: []Photo{{URL: "a"}}}
		_, err := d.PrimaryPhoto()
		assert.ErrorIs(t, err, ErrPrimaryPhoto)
	})

	t.Run("two primaries", func(t *testing.T) {
		d := VehicleDetail{Photos: []Photo{{URL: "a", Primary: true}, {URL: "b", Primary: true}}}
		_, err := d.PrimaryPhoto()
		assert.ErrorIs(t, err, ErrPrimaryPhoto)
	})
}
