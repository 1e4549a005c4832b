package m_vehicle

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the vehicles table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation that writes one vehicle row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.VehicleKey,
			data.Position,
			data.Brand,
			data.Model,
			data.Year,
			data.Price,
			data.MainImageURL,
			data.Mileage,
			data.Transmission,
		},
	)
}

// DeleteAllMut clears the table.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
