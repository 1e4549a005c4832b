// Package fixtures provides the demo catalog shipped with the service.
// It seeds the memory store and the external stores through `autocat seed`.
package fixtures

import "github.com/light-bringer/autocat-service/internal/app/vehicle/domain"

func intPtr(v int) *int { return &v }

func transmission(t domain.Transmission) *domain.Transmission { return &t }

func summary(key, brand, model string, year int, price float64, image string, mileage int, t domain.Transmission) domain.VehicleSummary {
	return domain.VehicleSummary{
		Key:          key,
		Brand:        brand,
		Model:        model,
		Year:         year,
		Price:        price,
		MainImageURL: "https://via.placeholder.com/300x169?text=" + image,
		Mileage:      intPtr(mileage),
		Transmission: transmission(t),
	}
}

// Summaries returns the demo listing records in store order.
func Summaries() []domain.VehicleSummary {
	return []domain.VehicleSummary{
		summary("1", "Honda", "Civic", 2023, 135000, "Honda+Civic+2023", 15000, domain.TransmissionAutomatic),
		summary("2", "Toyota", "Corolla", 2022, 125000, "Toyota+Corolla+2022", 25000, domain.TransmissionCVT),
		summary("3", "Chevrolet", "Onix", 2023, 75000, "Chevrolet+Onix+2023", 8000, domain.TransmissionManual),
		summary("4", "Hyundai", "HB20", 2021, 65000, "Hyundai+HB20+2021", 35000, domain.TransmissionManual),
		summary("5", "Jeep", "Compass", 2023, 185000, "Jeep+Compass+2023", 5000, domain.TransmissionAutomatic),
		summary("6", "Volkswagen", "Gol", 2020, 55000, "VW+Gol+2020", 45000, domain.TransmissionManual),
		summary("7", "Nissan", "Kicks", 2022, 95000, "Nissan+Kicks+2022", 18000, domain.TransmissionCVT),
		summary("8", "Fiat", "Argo", 2023, 72000, "Fiat+Argo+2023", 12000, domain.TransmissionManual),
		summary("9", "Hyundai", "Creta", 2023, 115000, "Hyundai+Creta+2023", 7000, domain.TransmissionAutomatic),
		summary("10", "Volkswagen", "T-Cross", 2022, 125000, "VW+T-Cross+2022", 22000, domain.TransmissionAutomatic),
		summary("11", "Jeep", "Renegade", 2021, 105000, "Jeep+Renegade+2021", 30000, domain.TransmissionAutomatic),
		summary("12", "Chevrolet", "Tracker", 2023, 145000, "Chevrolet+Tracker+2023", 3000, domain.TransmissionAutomatic),
		summary("13", "Volkswagen", "Polo", 2022, 85000, "VW+Polo+2022", 20000, domain.TransmissionManual),
		summary("14", "Fiat", "Cronos", 2021, 68000, "Fiat+Cronos+2021", 28000, domain.TransmissionManual),
		summary("15", "Honda", "HR-V", 2022, 155000, "Honda+HR-V+2022", 16000, domain.TransmissionCVT),
	}
}

var sharingNetworks = []string{"Facebook", "WhatsApp", "Email"}

// Details returns the detail records of the demo catalog, keyed by vehicle key.
func Details() map[string]domain.VehicleDetail {
	return map[string]domain.VehicleDetail{
		"1": civic(),
		"2": corolla(),
	}
}

func civic() domain.VehicleDetail {
	return domain.VehicleDetail{
		Key:             "1",
		Title:           "Honda Civic 2023",
		Brand:           "Honda",
		Model:           "Civic",
		FabricationYear: 2023,
		ModelYear:       2023,
		Price:           135000,
		Status:          domain.StatusAvailable,
		Mileage:         15000,
		Fuel:            domain.FuelFlex,
		Transmission:    domain.TransmissionAutomatic,
		Power:           "155 hp",
		Engine:          "2.0",
		Color:           "Silver",
		Doors:           4,
		Body:            domain.BodySedan,
		PlateFinalDigit: 5,
		Photos: []domain.Photo{
			{URL: "https://via.placeholder.com/800x450?text=Honda+Civic+2023+Front", Caption: "Front view", Primary: true},
			{URL: "https://via.placeholder.com/800x450?text=Honda+Civic+2023+Side", Caption: "Side view"},
			{URL: "https://via.placeholder.com/800x450?text=Honda+Civic+2023+Interior", Caption: "Interior"},
		},
		ZoomMode:  domain.ZoomBoth,
		ZoomLevel: 200,
		StandardItems: []domain.EquipmentItem{
			{Name: "Digital air conditioning", Category: domain.CategoryComfort},
			{Name: "Electric steering", Category: domain.CategoryComfort},
			{Name: "Power windows", Category: domain.CategoryComfort},
			{Name: "Power locks", Category: domain.CategoryComfort},
			{Name: "Front airbags", Category: domain.CategorySafety},
			{Name: "ABS brakes", Category: domain.CategorySafety},
			{Name: "Stability control", Category: domain.CategorySafety},
			{Name: "Multimedia center", Category: domain.CategoryTechnology},
		},
		OptionalItems: []domain.EquipmentItem{
			{Name: "Sunroof", Category: domain.CategoryComfort},
			{Name: "Leather seats", Category: domain.CategoryComfort},
			{Name: "Parking sensor", Category: domain.CategoryTechnology},
			{Name: "Rear camera", Category: domain.CategoryTechnology},
		},
		VisibleItemsPerCard: 10,
		History: domain.History{
			Origin:   domain.OriginDealership,
			Owners:   1,
			Warranty: "Until 12/2025",
			Revisions: []domain.Revision{
				{Date: "2023-06-15", Mileage: 5000, Location: "Honda dealership"},
				{Date: "2023-12-10", Mileage: 10000, Location: "Honda dealership"},
			},
			Incidents: []domain.Incident{},
			Inspection: &domain.InspectionReport{
				InspectionDate: "2024-01-15",
				OverallResult:  "Approved",
				Notes:          "Vehicle in excellent condition",
			},
		},
		Sale: domain.SaleConditions{
			PaymentMethods: []string{"Cash", "Financing"},
			Financing: &domain.FinancingTerms{
				MinimumDownPayment:  27000,
				MonthlyInterestRate: 1.49,
				MaxTermMonths:       60,
			},
			AcceptsTradeIn: true,
			Observations:   "Accepts a vehicle as part of the payment",
			RequiredDocuments: []domain.RequiredDocument{
				{Document: "ID and taxpayer number", Note: "Original and copy"},
				{Document: "Proof of address", Note: "Issued in the last 3 months"},
				{Document: "Proof of income", Note: "For financing"},
			},
			DocumentState: domain.DocumentState{
				Status:  domain.DocumentsRegular,
				Pending: []string{},
				Notes:   "Paperwork complete and regular",
			},
		},
		Sharing: domain.Sharing{
			URL:            "/vehicle/honda-civic-2023-1",
			SocialNetworks: append([]string(nil), sharingNetworks...),
			Text:           "Check out this Honda Civic 2023 for R$ 135,000.00",
		},
	}
}

func corolla() domain.VehicleDetail {
	return domain.VehicleDetail{
		Key:             "2",
		Title:           "Toyota Corolla 2022",
		Brand:           "Toyota",
		Model:           "Corolla",
		FabricationYear: 2022,
		ModelYear:       2022,
		Price:           125000,
		Status:          domain.StatusAvailable,
		Mileage:         25000,
		Fuel:            domain.FuelFlex,
		Transmission:    domain.TransmissionCVT,
		Power:           "144 hp",
		Engine:          "2.0",
		Color:           "White",
		Doors:           4,
		Body:            domain.BodySedan,
		PlateFinalDigit: 3,
		Photos: []domain.Photo{
			{URL: "https://via.placeholder.com/800x450?text=Toyota+Corolla+2022+Front", Caption: "Front view", Primary: true},
			{URL: "https://via.placeholder.com/800x450?text=Toyota+Corolla+2022+Side", Caption: "Side view"},
		},
		ZoomMode:  domain.ZoomLightbox,
		ZoomLevel: 200,
		StandardItems: []domain.EquipmentItem{
			{Name: "Automatic air conditioning", Category: domain.CategoryComfort},
			{Name: "Electric steering", Category: domain.CategoryComfort},
			{Name: "Power windows", Category: domain.CategoryComfort},
			{Name: "Multiple airbags", Category: domain.CategorySafety},
			{Name: "ABS brakes", Category: domain.CategorySafety},
			{Name: "Multimedia center", Category: domain.CategoryTechnology},
		},
		OptionalItems: []domain.EquipmentItem{
			{Name: "Leather seats", Category: domain.CategoryComfort},
			{Name: "Parking sensor", Category: domain.CategoryTechnology},
		},
		VisibleItemsPerCard: 10,
		History: domain.History{
			Origin:   domain.OriginPrivate,
			Owners:   1,
			Warranty: "Until 06/2025",
			Revisions: []domain.Revision{
				{Date: "2022-08-20", Mileage: 10000, Location: "Toyota dealership"},
				{Date: "2023-02-15", Mileage: 20000, Location: "Toyota dealership"},
			},
			Incidents: []domain.Incident{},
			Inspection: &domain.InspectionReport{
				InspectionDate: "2024-01-10",
				OverallResult:  "Approved",
				Notes:          "Well kept vehicle",
			},
		},
		Sale: domain.SaleConditions{
			PaymentMethods: []string{"Cash", "Financing"},
			Financing: &domain.FinancingTerms{
				MinimumDownPayment:  25000,
				MonthlyInterestRate: 1.59,
				MaxTermMonths:       48,
			},
			AcceptsTradeIn: true,
			RequiredDocuments: []domain.RequiredDocument{
				{Document: "ID and taxpayer number", Note: "Original and copy"},
				{Document: "Proof of address", Note: "Up to date"},
			},
			DocumentState: domain.DocumentState{
				Status:  domain.DocumentsRegular,
				Pending: []string{},
				Notes:   "Paperwork up to date",
			},
		},
		Sharing: domain.Sharing{
			URL:            "/vehicle/toyota-corolla-2022-2",
			SocialNetworks: append([]string(nil), sharingNetworks...),
			Text:           "Check out this Toyota Corolla 2022 for R$ 125,000.00",
		},
	}
}
