package m_vehicle

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

func TestFromSummary(t *testing.T) {
	mileage := 15000
	tr := domain.TransmissionAutomatic
	v := domain.VehicleSummary{
		Key: "1", Brand: "Honda", Model: "Civic", Year: 2023, Price: 135000,
		MainImageURL: "img", Mileage: &mileage, Transmission: &tr,
	}

	d := FromSummary(4, v)
	assert.Equal(t, int64(4), d.Position)
	assert.Equal(t, spanner.NullInt64{Int64: 15000, Valid: true}, d.Mileage)
	assert.Equal(t, spanner.NullString{StringVal: "Automatic", Valid: true}, d.Transmission)
	assert.Equal(t, v, d.ToSummary())
}

func TestToSummary_NullOptionals(t *testing.T) {
	d := &Data{VehicleKey: "9", Brand: "Hyundai", Model: "Creta", Year: 2023, Price: 115000}

	v := d.ToSummary()
	assert.Nil(t, v.Mileage)
	assert.Nil(t, v.Transmission)
	assert.False(t, v.HasTransmission())
}

func TestModel_InsertMut(t *testing.T) {
	m := NewModel()
	assert.NotNil(t, m.InsertMut(&Data{VehicleKey: "1"}))
	assert.NotNil(t, m.DeleteAllMut())
	assert.Len(t, Columns(), 9)
	assert.Equal(t, "model", Columns()[3])
	assert.Equal(t, ModelCol, Columns()[3])
}
