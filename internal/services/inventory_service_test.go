package services

import (
	"testing"

	"transportpro/internal/domain"
	"transportpro/internal/domain/models"
	"transportpro/internal/repositories"
	"transportpro/internal/seed"
)

func newInventoryService() InventoryService {
	return InventoryService{Repo: repositories.NewTruckRepository(seed.Trucks(), seed.TruckModels())}
}

func validTruckInput() models.TruckInput {
	return models.TruckInput{
		RegistrationNumber: "rj-14-xy-7890",
		Model:              "Tata 407",
		InitialModelYear:   2017,
		PurchaseDate:       "2024-02-01",
		SellerDetails:      models.SellerDetails{Name: "Anil"},
		FullPurchaseAmount: 420000,
		PaymentModes: []models.PaymentEntry{
			{Mode: models.PaymentCash, Amount: 20000, Date: "2024-02-01", Percentage: 4.8},
			{Mode: models.PaymentPhonePe, Amount: 400000, Date: "2024-02-01", Percentage: 95.2, TransactionID: "PP1"},
		},
		Expenses: models.TruckExpenses{
			Transportation: 5000, Driver: 3000, Diesel: 8000, Toll: 2000,
			BodyWork: 25000, KamaniWork: 15000, Tyre: 20000, Paint: 12000, Builty: 1000,
		},
	}
}

func validSale() models.SaleDetails {
	return models.SaleDetails{
		BuyerDetails:     models.BuyerDetails{Name: "Mahesh"},
		SaleAmount:       600000,
		SaleDate:         "2024-03-01",
		CommissionAmount: 9000,
	}
}

func TestAddTruckUnsoldHasNoProfit(t *testing.T) {
	svc := newInventoryService()
	truck, err := svc.AddTruck(validTruckInput())
	if err != nil {
		t.Fatalf("add truck: %v", err)
	}
	if truck.ID != "TRK004" {
		t.Fatalf("id = %s, want TRK004", truck.ID)
	}
	if truck.Profit != nil {
		t.Fatalf("unsold truck must not have profit, got %v", *truck.Profit)
	}
	if truck.Status != models.TruckAvailable {
		t.Fatalf("status should default to available, got %s", truck.Status)
	}
	if truck.Investment() != 511000 {
		t.Fatalf("investment = %v, want 511000", truck.Investment())
	}
	for _, p := range truck.PaymentModes {
		if p.ID == "" {
			t.Fatalf("payment entries should get ids")
		}
	}
}

func TestAddTruckWithSaleIsSold(t *testing.T) {
	svc := newInventoryService()
	in := validTruckInput()
	sale := validSale()
	in.SaleDetails = &sale
	truck, err := svc.AddTruck(in)
	if err != nil {
		t.Fatalf("add truck: %v", err)
	}
	if truck.Status != models.TruckSold || truck.Profit == nil || *truck.Profit != 80000 {
		t.Fatalf("expected sold with profit 80000, got %s %v", truck.Status, truck.Profit)
	}
}

func TestAddTruckValidation(t *testing.T) {
	svc := newInventoryService()
	cases := map[string]func(*models.TruckInput){
		"missing model":     func(in *models.TruckInput) { in.Model = "" },
		"bad purchase date": func(in *models.TruckInput) { in.PurchaseDate = "2024-02-30" },
		"sold without sale": func(in *models.TruckInput) { in.Status = models.TruckSold },
		"bad payment mode":  func(in *models.TruckInput) { in.PaymentModes[0].Mode = "Barter" },
		"cheque no number":  func(in *models.TruckInput) { in.PaymentModes[0].Mode = models.PaymentCheque },
		"noc received only": func(in *models.TruckInput) { in.NOCReceivedDate = "2024-02-10" },
		"negative tyre":     func(in *models.TruckInput) { in.Expenses.Tyre = -5 },
	}
	for name, mutate := range cases {
		in := validTruckInput()
		mutate(&in)
		if _, err := svc.AddTruck(in); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestUpdateTruckRejectsSaleDetails(t *testing.T) {
	svc := newInventoryService()
	sale := validSale()
	if _, err := svc.UpdateTruck("TRK001", models.TruckPatch{SaleDetails: &sale}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	sold := models.TruckSold
	if _, err := svc.UpdateTruck("TRK001", models.TruckPatch{Status: &sold}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for status sold, got %v", err)
	}
	truck, _ := svc.GetTruck("TRK001")
	if truck.Status != models.TruckAvailable || truck.SaleDetails != nil {
		t.Fatalf("rejected update changed the truck: %+v", truck)
	}
}

func TestUpdateSoldTruckRecomputesProfit(t *testing.T) {
	svc := newInventoryService()
	expenses := models.TruckExpenses{Tyre: 10000}
	truck, err := svc.UpdateTruck("TRK002", models.TruckPatch{Expenses: &expenses})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	// 480000 - 15000 - (350000 + 10000)
	if truck.Profit == nil || *truck.Profit != 105000 {
		t.Fatalf("profit = %v, want 105000", truck.Profit)
	}
	if truck.Status != models.TruckSold {
		t.Fatalf("status changed to %s", truck.Status)
	}

	available := models.TruckAvailable
	if _, err := svc.UpdateTruck("TRK002", models.TruckPatch{Status: &available}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict when un-selling, got %v", err)
	}
}

func TestSellTruck(t *testing.T) {
	svc := newInventoryService()
	truck, err := svc.SellTruck("TRK001", validSale())
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	// 600000 - 9000 - (420000 + 106000)
	if truck.Status != models.TruckSold || truck.Profit == nil || *truck.Profit != 65000 {
		t.Fatalf("expected sold with profit 65000, got %s %v", truck.Status, truck.Profit)
	}
	if _, err := svc.SellTruck("TRK001", validSale()); !domain.IsConflict(err) {
		t.Fatalf("selling twice should conflict, got %v", err)
	}
	if _, err := svc.SellTruck("TRK999", validSale()); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	early := validSale()
	early.SaleDate = "2023-12-31"
	if _, err := svc.SellTruck("TRK003", early); !domain.IsValidation(err) {
		t.Fatalf("sale before purchase should be rejected, got %v", err)
	}
}

func TestCorrectSale(t *testing.T) {
	svc := newInventoryService()
	if _, err := svc.CorrectSale("TRK001", validSale()); !domain.IsConflict(err) {
		t.Fatalf("correcting an unsold truck should conflict, got %v", err)
	}
	sale := validSale()
	sale.SaleAmount = 500000
	sale.CommissionAmount = 0
	truck, err := svc.CorrectSale("TRK002", sale)
	if err != nil {
		t.Fatalf("correct sale: %v", err)
	}
	// 500000 - (350000 + 86000)
	if truck.Profit == nil || *truck.Profit != 64000 {
		t.Fatalf("profit = %v, want 64000", truck.Profit)
	}
	if truck.Status != models.TruckSold {
		t.Fatalf("status changed to %s", truck.Status)
	}
}

func TestListTrucksByStatus(t *testing.T) {
	svc := newInventoryService()
	got, err := svc.ListTrucks("", "noc-pending")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "TRK003" {
		t.Fatalf("unexpected trucks: %+v", got)
	}
	got, _ = svc.ListTrucks("priya", "")
	if len(got) != 1 || got[0].ID != "TRK002" {
		t.Fatalf("seller search failed: %+v", got)
	}
	if len(svc.Models()) == 0 {
		t.Fatalf("model catalogue should be seeded")
	}
}
