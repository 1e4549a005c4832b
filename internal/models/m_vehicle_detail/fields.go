package m_vehicle_detail

// Field name constants for the vehicle_details table.
const (
	TableName = "vehicle_details"

	VehicleKey = "vehicle_key"
	Payload    = "payload"
)
