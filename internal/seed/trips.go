package seed

import "transportpro/internal/domain/models"

func Fleet() []string {
	return []string{
		"MH-12-AB-1234",
		"GJ-05-CD-5678",
		"KA-03-EF-9012",
		"TN-09-GH-3456",
		"RJ-14-XY-7890",
		"UP-32-PQ-5432",
		"HR-26-LM-8765",
		"PB-65-ST-2109",
	}
}

func Trips() []models.Trip {
	return []models.Trip{
		{
			ID:                "TRP001",
			TruckRegistration: "MH-12-AB-1234",
			Source:            "Mumbai",
			Destination:       "Delhi",
			StartDate:         "2024-01-15",
			ReturnDate:        "2024-01-17",
			Distance:          1400,
			Expenses:          models.TripExpenses{Diesel: 8500, Toll: 2200, Driver: 3000, Other: 500},
			Revenue:           25000,
			Profit:            10800,
			Status:            models.TripCompleted,
			CreatedAt:         ts("2024-01-14T10:00:00Z"),
			UpdatedAt:         ts("2024-01-17T18:00:00Z"),
		},
		{
			ID:                "TRP002",
			TruckRegistration: "GJ-05-CD-5678",
			Source:            "Ahmedabad",
			Destination:       "Bangalore",
			StartDate:         "2024-01-14",
			ReturnDate:        "2024-01-16",
			Distance:          1200,
			Expenses:          models.TripExpenses{Diesel: 7200, Toll: 1800, Driver: 2800, Other: 400},
			Revenue:           22000,
			Profit:            9800,
			Status:            models.TripCompleted,
			CreatedAt:         ts("2024-01-13T09:00:00Z"),
			UpdatedAt:         ts("2024-01-16T20:00:00Z"),
		},
		{
			ID:                "TRP003",
			TruckRegistration: "KA-03-EF-9012",
			Source:            "Bangalore",
			Destination:       "Chennai",
			StartDate:         "2024-01-18",
			ReturnDate:        "2024-01-19",
			Distance:          350,
			Expenses:          models.TripExpenses{Diesel: 2800, Toll: 600, Driver: 1500, Other: 200},
			Revenue:           8000,
			Profit:            2900,
			Status:            models.TripInTransit,
			CreatedAt:         ts("2024-01-17T14:00:00Z"),
			UpdatedAt:         ts("2024-01-18T08:00:00Z"),
		},
		{
			ID:                "TRP004",
			TruckRegistration: "TN-09-GH-3456",
			Source:            "Chennai",
			Destination:       "Hyderabad",
			StartDate:         "2024-01-20",
			ReturnDate:        "2024-01-21",
			Distance:          630,
			Expenses:          models.TripExpenses{Diesel: 4200, Toll: 900, Driver: 2000, Other: 300},
			Revenue:           12000,
			Profit:            4600,
			Status:            models.TripPlanned,
			CreatedAt:         ts("2024-01-19T11:00:00Z"),
			UpdatedAt:         ts("2024-01-19T11:00:00Z"),
		},
		{
			ID:                "TRP005",
			TruckRegistration: "MH-12-AB-1234",
			Source:            "Delhi",
			Destination:       "Kolkata",
			StartDate:         "2024-01-22",
			ReturnDate:        "2024-01-24",
			Distance:          1500,
			Expenses:          models.TripExpenses{Diesel: 9000, Toll: 2400, Driver: 3200, Other: 600},
			Revenue:           28000,
			Profit:            12800,
			Status:            models.TripPlanned,
			CreatedAt:         ts("2024-01-20T16:00:00Z"),
			UpdatedAt:         ts("2024-01-20T16:00:00Z"),
		},
	}
}
