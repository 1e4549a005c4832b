package m_vehicle

// Field name constants for the vehicles table.
const (
	TableName = "vehicles"

	VehicleKey   = "vehicle_key"
	Position     = "position"
	Brand        = "brand"
	ModelCol     = "model"
	Year         = "year"
	Price        = "price"
	MainImageURL = "main_image_url"
	Mileage      = "mileage"
	Transmission = "transmission"
)

// Columns lists every column in insert and select order.
func Columns() []string {
	return []string{
		VehicleKey,
		Position,
		Brand,
		ModelCol,
		Year,
		Price,
		MainImageURL,
		Mileage,
		Transmission,
	}
}
