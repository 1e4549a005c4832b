package domain

// VehicleStatus is the sale status of a detailed vehicle record.
type VehicleStatus string

const (
	StatusAvailable VehicleStatus = "Available"
	StatusReserved  VehicleStatus = "Reserved"
	StatusSold      VehicleStatus = "Sold"
)

// FuelType is the closed set of fuel types.
type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelEthanol  FuelType = "Ethanol"
	FuelFlex     FuelType = "Flex"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// BodyStyle is the closed set of body styles.
type BodyStyle string

const (
	BodyHatch       BodyStyle = "Hatch"
	BodySedan       BodyStyle = "Sedan"
	BodySUV         BodyStyle = "SUV"
	BodyPickup      BodyStyle = "Pickup"
	BodyMinivan     BodyStyle = "Minivan"
	BodyConvertible BodyStyle = "Convertible"
	BodyCoupe       BodyStyle = "Coupe"
	BodyWagon       BodyStyle = "Wagon"
)

// ItemCategory tags a standard or optional equipment item.
type ItemCategory string

const (
	CategoryComfort     ItemCategory = "Comfort"
	CategorySafety      ItemCategory = "Safety"
	CategoryTechnology  ItemCategory = "Technology"
	CategoryPerformance ItemCategory = "Performance"
	CategoryAesthetics  ItemCategory = "Aesthetics"
)

// Origin describes where the vehicle came from.
type Origin string

const (
	OriginPrivate    Origin = "Private"
	OriginDealership Origin = "Dealership"
	OriginAuction    Origin = "Auction"
	OriginImported   Origin = "Imported"
	OriginRental     Origin = "Rental"
)

// ZoomMode is how the photo gallery enlarges pictures.
type ZoomMode string

const (
	ZoomLightbox ZoomMode = "lightbox"
	ZoomInline   ZoomMode = "zoom"
	ZoomBoth     ZoomMode = "both"
)

// DocumentStatus is the state of the vehicle paperwork.
type DocumentStatus string

const (
	DocumentsRegular    DocumentStatus = "Regular"
	DocumentsPending    DocumentStatus = "Pending"
	DocumentsInProgress DocumentStatus = "In progress"
)

// Photo is one picture of the gallery.
type Photo struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Primary bool   `json:"primary"`
}

// EquipmentItem is a standard or optional feature.
type EquipmentItem struct {
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
}

// Revision is a maintenance log entry.
type Revision struct {
	Date     string `json:"date"`
	Mileage  int    `json:"mileage"`
	Location string `json:"location"`
}

// Incident is an accident or insurance claim record.
type Incident struct {
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// InspectionReport is the technical inspection outcome.
type InspectionReport struct {
	InspectionDate string `json:"inspectionDate"`
	OverallResult  string `json:"overallResult"`
	Notes          string `json:"notes"`
}

// History groups the ownership and maintenance history.
type History struct {
	Origin     Origin            `json:"origin"`
	Owners     int               `json:"owners"`
	Warranty   string            `json:"warranty,omitempty"`
	Revisions  []Revision        `json:"revisions"`
	Incidents  []Incident        `json:"incidents"`
	Inspection *InspectionReport `json:"inspection,omitempty"`
}

// FinancingTerms are the optional financing conditions.
type FinancingTerms struct {
	MinimumDownPayment  float64 `json:"minimumDownPayment"`
	MonthlyInterestRate float64 `json:"monthlyInterestRate"`
	MaxTermMonths       int     `json:"maxTermMonths"`
}

// RequiredDocument is a document a buyer must bring.
type RequiredDocument struct {
	Document string `json:"document"`
	Note     string `json:"note"`
}

// DocumentState is the paperwork record of the vehicle.
type DocumentState struct {
	Status  DocumentStatus `json:"status"`
	Pending []string       `json:"pending"`
	Notes   string         `json:"notes"`
}

// SaleConditions groups payment and paperwork terms.
type SaleConditions struct {
	PaymentMethods    []string           `json:"paymentMethods"`
	Financing         *FinancingTerms    `json:"financing,omitempty"`
	AcceptsTradeIn    bool               `json:"acceptsTradeIn"`
	Observations      string             `json:"observations,omitempty"`
	RequiredDocuments []RequiredDocument `json:"requiredDocuments"`
	DocumentState     DocumentState      `json:"documentState"`
}

// Sharing holds the metadata used by share buttons.
type Sharing struct {
	URL            string   `json:"url"`
	SocialNetworks []string `json:"socialNetworks"`
	Text           string   `json:"text"`
}

// VehicleDetail is the full representation of one vehicle. Its Key always
// has a matching VehicleSummary in the same store.
type VehicleDetail struct {
	Key                 string          `json:"key"`
	Title               string          `json:"title"`
	Brand               string          `json:"brand"`
	Model               string          `json:"model"`
	FabricationYear     int             `json:"fabricationYear"`
	ModelYear           int             `json:"modelYear"`
	Price               float64         `json:"price"`
	Status              VehicleStatus   `json:"status"`
	Mileage             int             `json:"mileage"`
	Fuel                FuelType        `json:"fuel"`
	Transmission        Transmission    `json:"transmission"`
	Power               string          `json:"power"`
	Engine              string          `json:"engine"`
	Color               string          `json:"color"`
	Doors               int             `json:"doors"`
	Body                BodyStyle       `json:"body"`
	PlateFinalDigit     int             `json:"plateFinalDigit"`
	Photos              []Photo         `json:"photos"`
	ZoomMode            ZoomMode        `json:"zoomMode"`
	ZoomLevel           int             `json:"zoomLevel"`
	StandardItems       []EquipmentItem `json:"standardItems"`
	OptionalItems       []EquipmentItem `json:"optionalItems"`
	VisibleItemsPerCard int             `json:"visibleItemsPerCategory"`
	History             History         `json:"history"`
	Sale                SaleConditions  `json:"sale"`
	Sharing             Sharing         `json:"sharing"`
}

// PrimaryPhoto returns the gallery photo flagged as primary. It fails with
// ErrPrimaryPhoto unless exactly one photo carries the flag.
func (d VehicleDetail) PrimaryPhoto() (Photo, error) {
	var (
		primary Photo
		count   int
	)
	for _, p := range d.Photos {
		if p.Primary {
			primary = p
			count++
		}
	}
	if count != 1 {
		return Photo{}, ErrPrimaryPhoto
	}
	return primary, nil
}

// Static hints echoed with every resolved detail.
var (
	SimilarityCriteria = []string{"Brand", "Price"}
	CardFields         = []string{"photo", "brand", "model", "year", "price", "mileage"}
)

// DisplayCarousel is the display format reported for similar vehicles.
const DisplayCarousel = "carousel"

// VehicleDetailView is a detail record augmented with similar vehicles.
type VehicleDetailView struct {
	VehicleDetail
	SimilarVehicles    []VehicleSummary `json:"similarVehicles"`
	SimilarityCriteria []string         `json:"similarityCriteria"`
	DisplayFormat      string           `json:"displayFormat"`
	CardFields         []string         `json:"cardFields"`
}
