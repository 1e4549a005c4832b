package m_vehicle_detail

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the vehicle_details table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation that writes one detail row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{VehicleKey, Payload},
		[]interface{}{data.VehicleKey, data.Payload},
	)
}

// DeleteAllMut clears the table.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
