package memory

import (
	"time"

	"listing-service/internal/core/domain"
)

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func datePtr(v time.Time) *time.Time { return &v }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedListings returns the demo collection the service starts with when no
// external storage is configured: six listings in Mutum-MT.
func SeedListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:            "5e5d4b1c-9c2a-4a57-8a3e-6f1d2b9c0a01",
			Title:         "Residencial Águas Claras",
			Description:   "Modern apartment with a privileged view in central Mutum",
			Price:         485000,
			DealType:      domain.DealSale,
			ListingType:   domain.TypeApartment,
			Bedrooms:      3,
			Bathrooms:     2,
			Area:          85,
			ParkingSpaces: intPtr(2),
			Location: domain.Location{
				Address:      "Rua das Palmeiras, 890",
				City:         "Mutum",
				State:        "MT",
				Neighborhood: "Centro",
				Lat:          floatPtr(-15.1217),
				Lng:          floatPtr(-58.0036),
			},
			Images: []string{
				"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1617104678533-b5eaadcdf899?w=800&h=600&fit=crop",
			},
			FloorPlan: "https://images.unsplash.com/photo-1503387762-592deb58ef4e?w=600&h=400&fit=crop",
			Features:  []string{"Pool", "Gym", "Gourmet Balcony", "Elevator", "24h Concierge", "Playground"},
			Company:   "Construtora Atlântico",
			Agent:     "Marina Silva",
			Agents: []domain.ListingAgent{
				{ID: "2", Name: "Maria Santos", Company: "Imobiliária Prime", Phone: "(65) 99999-0002", Email: "maria@homeseek.com", Active: true},
				{ID: "7", Name: "Fernando Corretor", Company: "Corretora Premium", Phone: "(65) 99999-0007", Email: "fernando@homeseek.com", Active: true},
			},
			Status:       domain.StatusAvailable,
			Highlighted:  true,
			WorkProgress: intPtr(85),
			DeliveryDate: datePtr(date(2025, time.August, 1)),
			CreatedAt:    date(2024, time.January, 15),
		},
		{
			ID:            "5e5d4b1c-9c2a-4a57-8a3e-6f1d2b9c0a02",
			Title:         "Ilha dos Açores II – Pre-launch",
			Description:   "Exclusive launch with premium finishing in central Mutum",
			Price:         320000,
			DealType:      domain.DealSale,
			ListingType:   domain.TypeApartment,
			Bedrooms:      2,
			Bathrooms:     1,
			Area:          65,
			ParkingSpaces: intPtr(1),
			Location: domain.Location{
				Address:      "Rua 410 Nº 639",
				City:         "Mutum",
				State:        "MT",
				Neighborhood: "São José",
				Lat:          floatPtr(-15.1250),
				Lng:          floatPtr(-58.0100),
			},
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop",
			},
			FloorPlan: "https://images.unsplash.com/photo-1584952461963-d4a04e15c92d?w=600&h=400&fit=crop",
			Features:  []string{"Pool", "Barbecue Area", "Playground", "Party Room"},
			Company:   "Grupo Incorporador SC",
			Agent:     "Patricia Incorporadora",
			Agents: []domain.ListingAgent{
				{ID: "2", Name: "Maria Santos", Company: "Imobiliária Prime", Phone: "(65) 99999-0002", Email: "maria@homeseek.com", Active: true},
			},
			Status:       domain.StatusAvailable,
			Highlighted:  false,
			WorkProgress: intPtr(45),
			DeliveryDate: datePtr(date(2025, time.December, 1)),
			CreatedAt:    date(2024, time.February, 1),
		},
		{
			ID:            "5e5d4b1c-9c2a-4a57-8a3e-6f1d2b9c0a03",
			Title:         "Residencial Torre Privilege",
			Description:   "High-end unit with a panoramic view of Mutum",
			Price:         750000,
			DealType:      domain.DealSale,
			ListingType:   domain.TypeApartment,
			Bedrooms:      4,
			Bathrooms:     3,
			Area:          120,
			ParkingSpaces: intPtr(2),
			Location: domain.Location{
				Address:      "Rua Copacabana, 150",
				City:         "Mutum",
				State:        "MT",
				Neighborhood: "Centro",
				Lat:          floatPtr(-15.1200),
				Lng:          floatPtr(-58.0020),
			},
			Images: []string{
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=800&h=600&fit=crop",
			},
			FloorPlan:    "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=600&h=400&fit=crop",
			Features:     []string{"SPA", "Wine Bar", "Rooftop", "Concierge", "Infinity Pool"},
			Company:      "Construtora Oceano",
			Agent:        "Patricia Costa",
			Status:       domain.StatusAvailable,
			Highlighted:  true,
			WorkProgress: intPtr(70),
			DeliveryDate: datePtr(date(2025, time.October, 1)),
			CreatedAt:    date(2024, time.January, 20),
		},
		{
			ID:            "5e5d4b1c-9c2a-4a57-8a3e-6f1d2b9c0a04",
			Title:         "Casa Térrea Jardim Europa",
			Description:   "Family house in a gated community with a large garden",
			Price:         580000,
			DealType:      domain.DealSale,
			ListingType:   domain.TypeHouse,
			Bedrooms:      3,
			Bathrooms:     2,
			Area:          180,
			ParkingSpaces: intPtr(2),
			Location: domain.Location{
				Address:      "Rua das Flores, 445",
				City:         "Mutum",
				State:        "MT",
				Neighborhood: "Jardim Europa",
				Lat:          floatPtr(-15.1280),
				Lng:          floatPtr(-58.0080),
			},
			Images: []string{
				"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800&h=600&fit=crop",
			},
			FloorPlan:   "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=600&h=400&fit=crop",
			Features:    []string{"Pool", "Garden", "Barbecue Area", "Covered Garage"},
			Company:     "Imobiliária Prime",
			Agent:       "Roberto Alves",
			Status:      domain.StatusAvailable,
			Highlighted: false,
			CreatedAt:   date(2024, time.February, 10),
		},
		{
			ID:            "5e5d4b1c-9c2a-4a57-8a3e-6f1d2b9c0a05",
			Title:         "Apartamento Vista Vale",
			Description:   "Privileged view with fitted furniture",
			Price:         3500,
			DealType:      domain.DealRent,
			ListingType:   domain.TypeApartment,
			Bedrooms:      2,
			Bathrooms:     1,
			Area:          70,
			ParkingSpaces: intPtr(1),
			Location: domain.Location{
				Address:      "Av. Central, 1200",
				City:         "Mutum",
				State:        "MT",
				Neighborhood: "Vila Nova",
				Lat:          floatPtr(-15.1180),
				Lng:          floatPtr(-58.0060),
			},
			Images: []string{
				"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop",
			},
			FloorPlan:   "https://images.unsplash.com/photo-1551836022-deb4988cc6c0?w=600&h=400&fit=crop",
			Features:    []string{"Furnished", "Valley View", "Air Conditioning", "Internet"},
			Company:     "Imobiliária Litoral",
			Agent:       "Ana Carolina",
			Status:      domain.StatusAvailable,
			Highlighted: false,
			CreatedAt:   date(2024, time.February, 5),
		},
		{
			ID:            "5e5d4b1c-9c2a-4a57-8a3e-6f1d2b9c0a06",
			Title:         "Cobertura Duplex Premium",
			Description:   "Exclusive penthouse with terrace and jacuzzi",
			Price:         950000,
			DealType:      domain.DealSale,
			ListingType:   domain.TypeApartment,
			Bedrooms:      4,
			Bathrooms:     4,
			Area:          200,
			ParkingSpaces: intPtr(3),
			Location: domain.Location{
				Address:      "Rua Beira Rio, 88",
				City:         "Mutum",
				State:        "MT",
				Neighborhood: "Centro",
				Lat:          floatPtr(-15.1230),
				Lng:          floatPtr(-58.0040),
			},
			Images: []string{
				"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?w=800&h=600&fit=crop",
			},
			FloorPlan:   "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=600&h=400&fit=crop",
			Features:    []string{"Jacuzzi", "Terrace", "Fireplace", "Home Theater", "Wine Cellar"},
			Company:     "Imobiliária Exclusive",
			Agent:       "Fernando Santos",
			Status:      domain.StatusReserved,
			Highlighted: true,
			CreatedAt:   date(2024, time.January, 25),
		},
	}
}
