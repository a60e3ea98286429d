package seed

import "transportpro/internal/domain/models"

func TruckModels() []string {
	return []string{
		"Tata 407",
		"Tata LPT 709",
		"Tata LPT 1109",
		"Ashok Leyland Dost",
		"Ashok Leyland Partner",
		"Eicher Pro 1049",
		"Eicher Pro 1110",
		"Mahindra Bolero Pickup",
		"Mahindra Jeeto",
		"Force Traveller",
	}
}

func Trucks() []models.TruckInventory {
	return []models.TruckInventory{
		{
			ID:                 "TRK001",
			RegistrationNumber: "MH-12-AB-1234",
			Model:              "Tata 407",
			InitialModelYear:   2018,
			PurchaseDate:       "2024-01-10",
			SellerDetails: models.SellerDetails{
				Name:          "Rajesh Kumar",
				Address:       "Mumbai, Maharashtra",
				PhoneNumber:   "9876543210",
				AadhaarNumber: "123456789012",
				EmailID:       "rajesh@example.com",
			},
			NOCApplied:            true,
			NOCAppliedDate:        "2024-01-12",
			NOCReceivedDate:       "2024-01-20",
			NewRegistrationNumber: "MH-12-AB-1234",
			InsuranceDetails: models.InsuranceDetails{
				Company:       "ICICI Lombard",
				IDV:           450000,
				AnnualPremium: 18000,
				FitnessExpiry: "2025-01-10",
				TaxDueDate:    "2024-12-31",
				TaxDueAmount:  12000,
			},
			FullPurchaseAmount: 420000,
			PaymentModes: []models.PaymentEntry{
				{ID: "1", Mode: models.PaymentCash, Amount: 50000, Date: "2024-01-10", Percentage: 11.9},
				{ID: "2", Mode: models.PaymentRTGS, Amount: 370000, Date: "2024-01-10", Percentage: 88.1, TransactionID: "RTGS123456"},
			},
			Expenses: models.TruckExpenses{
				Transportation: 8000, Driver: 5000, Diesel: 3000, Toll: 2000,
				BodyWork: 25000, KamaniWork: 15000, Tyre: 12000, Paint: 8000,
				Floor: 5000, Fatta: 3000, Builty: 2000, Insurance: 18000,
			},
			Status:    models.TruckAvailable,
			CreatedAt: ts("2024-01-10T10:00:00Z"),
			UpdatedAt: ts("2024-01-20T15:00:00Z"),
		},
		{
			ID:                 "TRK002",
			RegistrationNumber: "GJ-05-CD-5678",
			Model:              "Ashok Leyland Dost",
			InitialModelYear:   2019,
			PurchaseDate:       "2024-01-05",
			SellerDetails: models.SellerDetails{
				Name:          "Priya Sharma",
				Address:       "Ahmedabad, Gujarat",
				PhoneNumber:   "9876543211",
				AadhaarNumber: "123456789013",
				EmailID:       "priya@example.com",
			},
			NOCApplied:            true,
			NOCAppliedDate:        "2024-01-07",
			NOCReceivedDate:       "2024-01-15",
			NewRegistrationNumber: "GJ-05-CD-5678",
			InsuranceDetails: models.InsuranceDetails{
				Company:       "Bajaj Allianz",
				IDV:           380000,
				AnnualPremium: 15000,
				FitnessExpiry: "2025-01-05",
				TaxDueDate:    "2024-12-31",
				TaxDueAmount:  10000,
			},
			FullPurchaseAmount: 350000,
			PaymentModes: []models.PaymentEntry{
				{ID: "3", Mode: models.PaymentCheque, Amount: 350000, Date: "2024-01-05", Percentage: 100, ChequeNumber: "123456", BankName: "SBI"},
			},
			Expenses: models.TruckExpenses{
				Transportation: 7000, Driver: 4000, Diesel: 2500, Toll: 1500,
				BodyWork: 20000, KamaniWork: 12000, Tyre: 10000, Paint: 6000,
				Floor: 4000, Fatta: 2500, Builty: 1500, Insurance: 15000,
			},
			SaleDetails: &models.SaleDetails{
				BuyerDetails: models.BuyerDetails{
					Name:          "Suresh Patel",
					Address:       "Surat, Gujarat",
					AadhaarNumber: "987654321098",
					PhoneNumber:   "9876543333",
					EmailID:       "suresh@example.com",
				},
				SaleAmount:           480000,
				SaleDate:             "2024-01-25",
				CommissionDealerName: "Gujarat Motors",
				CommissionAmount:     15000,
			},
			Status:    models.TruckSold,
			CreatedAt: ts("2024-01-05T09:00:00Z"),
			UpdatedAt: ts("2024-01-25T16:00:00Z"),
		},
		{
			ID:                 "TRK003",
			RegistrationNumber: "KA-03-EF-9012",
			Model:              "Eicher Pro 1049",
			InitialModelYear:   2020,
			PurchaseDate:       "2024-01-15",
			SellerDetails: models.SellerDetails{
				Name:          "Ramesh Nair",
				Address:       "Bangalore, Karnataka",
				PhoneNumber:   "9876543212",
				AadhaarNumber: "123456789014",
				EmailID:       "ramesh@example.com",
			},
			NOCApplied:     true,
			NOCAppliedDate: "2024-01-17",
			InsuranceDetails: models.InsuranceDetails{
				Company:       "New India Assurance",
				IDV:           520000,
				AnnualPremium: 21000,
				FitnessExpiry: "2025-01-15",
				TaxDueDate:    "2024-12-31",
				TaxDueAmount:  15000,
			},
			FullPurchaseAmount: 485000,
			PaymentModes: []models.PaymentEntry{
				{ID: "4", Mode: models.PaymentCash, Amount: 100000, Date: "2024-01-15", Percentage: 20.6},
				{ID: "5", Mode: models.PaymentGPay, Amount: 385000, Date: "2024-01-15", Percentage: 79.4, TransactionID: "GP123456789"},
			},
			Expenses: models.TruckExpenses{
				Transportation: 10000, Driver: 6000, Diesel: 4000, Toll: 3000,
				BodyWork: 30000, KamaniWork: 18000, Tyre: 15000, Paint: 10000,
				Floor: 6000, Fatta: 4000, Builty: 3000, Insurance: 21000,
			},
			Status:    models.TruckNOCPending,
			CreatedAt: ts("2024-01-15T11:00:00Z"),
			UpdatedAt: ts("2024-01-17T14:00:00Z"),
		},
	}
}
