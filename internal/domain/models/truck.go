package models

import "time"

type TruckStatus string

const (
	TruckAvailable   TruckStatus = "available"
	TruckSold        TruckStatus = "sold"
	TruckMaintenance TruckStatus = "maintenance"
	TruckNOCPending  TruckStatus = "noc-pending"
)

func (s TruckStatus) Valid() bool {
	switch s {
	case TruckAvailable, TruckSold, TruckMaintenance, TruckNOCPending:
		return true
	default:
		return false
	}
}

type PaymentMode string

const (
	PaymentCash    PaymentMode = "Cash"
	PaymentRTGS    PaymentMode = "RTGS"
	PaymentGPay    PaymentMode = "GPay"
	PaymentPaytm   PaymentMode = "Paytm"
	PaymentPhonePe PaymentMode = "PhonePe"
	PaymentCheque  PaymentMode = "Cheque"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentRTGS, PaymentGPay, PaymentPaytm, PaymentPhonePe, PaymentCheque:
		return true
	default:
		return false
	}
}

// PaymentEntry is one instalment of the purchase amount. TransactionID is
// used by the digital modes, ChequeNumber and BankName by cheques.
type PaymentEntry struct {
	ID            string      `json:"id"`
	Mode          PaymentMode `json:"mode"`
	Amount        float64     `json:"amount"`
	Date          string      `json:"date"`
	Percentage    float64     `json:"percentage"`
	TransactionID string      `json:"transactionId,omitempty"`
	ChequeNumber  string      `json:"chequeNumber,omitempty"`
	BankName      string      `json:"bankName,omitempty"`
}

type PartyDetails struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phoneNumber"`
	AadhaarNumber string `json:"aadhaarNumber"`
	EmailID       string `json:"emailId"`
}

type SellerDetails = PartyDetails

type BuyerDetails = PartyDetails

// InsuranceDetails is stored as-is; IDV is never used in a computation.
type InsuranceDetails struct {
	Company       string  `json:"company"`
	IDV           float64 `json:"idv"`
	AnnualPremium float64 `json:"annualPremium"`
	FitnessExpiry string  `json:"fitnessExpiry"`
	TaxDueDate    string  `json:"taxDueDate"`
	TaxDueAmount  float64 `json:"taxDueAmount"`
}

type TruckExpenses struct {
	Transportation float64 `json:"transportation" binding:"gte=0"`
	Driver         float64 `json:"driver" binding:"gte=0"`
	Diesel         float64 `json:"diesel" binding:"gte=0"`
	Toll           float64 `json:"toll" binding:"gte=0"`
	BodyWork       float64 `json:"bodyWork" binding:"gte=0"`
	KamaniWork     float64 `json:"kamaniWork" binding:"gte=0"`
	Tyre           float64 `json:"tyre" binding:"gte=0"`
	Paint          float64 `json:"paint" binding:"gte=0"`
	Floor          float64 `json:"floor" binding:"gte=0"`
	Fatta          float64 `json:"fatta" binding:"gte=0"`
	Builty         float64 `json:"builty" binding:"gte=0"`
	Insurance      float64 `json:"insurance" binding:"gte=0"`
}

func (e TruckExpenses) Total() float64 {
	return e.Transportation + e.Driver + e.Diesel + e.Toll +
		e.BodyWork + e.KamaniWork + e.Tyre + e.Paint +
		e.Floor + e.Fatta + e.Builty + e.Insurance
}

// Folded is the part of the expenses reported under "other" in the
// inventory expense breakdown.
func (e TruckExpenses) Folded() float64 {
	return e.Driver + e.Diesel + e.Toll + e.Floor + e.Fatta + e.Builty
}

type SaleDetails struct {
	BuyerDetails         BuyerDetails `json:"buyerDetails"`
	SaleAmount           float64      `json:"saleAmount" binding:"gt=0"`
	SaleDate             string       `json:"saleDate"`
	CommissionDealerName string       `json:"commissionDealerName"`
	CommissionAmount     float64      `json:"commissionAmount" binding:"gte=0"`
}

// NetAmount is what the sale leaves after the dealer commission.
func (s SaleDetails) NetAmount() float64 {
	return s.SaleAmount - s.CommissionAmount
}

// TruckInventory is a second-hand truck from purchase to resale.
// Profit is nil until the truck has sale details.
type TruckInventory struct {
	ID                    string           `json:"id"`
	RegistrationNumber    string           `json:"registrationNumber"`
	Model                 string           `json:"model"`
	InitialModelYear      int              `json:"initialModelYear"`
	PurchaseDate          string           `json:"purchaseDate"`
	SellerDetails         SellerDetails    `json:"sellerDetails"`
	NOCApplied            bool             `json:"nocApplied"`
	NOCAppliedDate        string           `json:"nocAppliedDate,omitempty"`
	NOCReceivedDate       string           `json:"nocReceivedDate,omitempty"`
	NewRegistrationNumber string           `json:"newRegistrationNumber,omitempty"`
	InsuranceDetails      InsuranceDetails `json:"insuranceDetails"`
	FullPurchaseAmount    float64          `json:"fullPurchaseAmount"`
	PaymentModes          []PaymentEntry   `json:"paymentModes"`
	Expenses              TruckExpenses    `json:"expenses"`
	SaleDetails           *SaleDetails     `json:"saleDetails,omitempty"`
	Status                TruckStatus      `json:"status"`
	Profit                *float64         `json:"profit,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// Investment is the purchase amount plus every expense head.
func (t TruckInventory) Investment() float64 {
	return t.FullPurchaseAmount + t.Expenses.Total()
}

// NOCPending reports an applied NOC that has not come back yet.
func (t TruckInventory) NOCPending() bool {
	return t.NOCApplied && t.NOCReceivedDate == ""
}

// IsSold reports a truck counted by sales figures.
func (t TruckInventory) IsSold() bool {
	return t.Status == TruckSold && t.SaleDetails != nil
}

// TruckProfit is (sale - commission) - (purchase + expenses). ok is false
// while the truck has no sale details.
func TruckProfit(t TruckInventory) (profit float64, ok bool) {
	if t.SaleDetails == nil {
		return 0, false
	}
	return t.SaleDetails.NetAmount() - t.Investment(), true
}

func (t *TruckInventory) refreshProfit() {
	if p, ok := TruckProfit(*t); ok {
		t.Profit = &p
		return
	}
	t.Profit = nil
}

// TruckInput is the create payload. A truck created with sale details is
// created sold.
type TruckInput struct {
	RegistrationNumber    string           `json:"registrationNumber" binding:"required"`
	Model                 string           `json:"model" binding:"required"`
	InitialModelYear      int              `json:"initialModelYear"`
	PurchaseDate          string           `json:"purchaseDate" binding:"required"`
	SellerDetails         SellerDetails    `json:"sellerDetails"`
	NOCApplied            bool             `json:"nocApplied"`
	NOCAppliedDate        string           `json:"nocAppliedDate"`
	NOCReceivedDate       string           `json:"nocReceivedDate"`
	NewRegistrationNumber string           `json:"newRegistrationNumber"`
	InsuranceDetails      InsuranceDetails `json:"insuranceDetails"`
	FullPurchaseAmount    float64          `json:"fullPurchaseAmount" binding:"gte=0"`
	PaymentModes          []PaymentEntry   `json:"paymentModes"`
	Expenses              TruckExpenses    `json:"expenses"`
	SaleDetails           *SaleDetails     `json:"saleDetails"`
	Status                TruckStatus      `json:"status" binding:"omitempty,oneof=available sold maintenance noc-pending"`
}

// TruckPatch is the generic field update. SaleDetails is decoded only so
// the service can refuse it; sales go through Sell and CorrectSale.
type TruckPatch struct {
	RegistrationNumber    *string           `json:"registrationNumber"`
	Model                 *string           `json:"model"`
	InitialModelYear      *int              `json:"initialModelYear"`
	PurchaseDate          *string           `json:"purchaseDate"`
	SellerDetails         *SellerDetails    `json:"sellerDetails"`
	NOCApplied            *bool             `json:"nocApplied"`
	NOCAppliedDate        *string           `json:"nocAppliedDate"`
	NOCReceivedDate       *string           `json:"nocReceivedDate"`
	NewRegistrationNumber *string           `json:"newRegistrationNumber"`
	InsuranceDetails      *InsuranceDetails `json:"insuranceDetails"`
	FullPurchaseAmount    *float64          `json:"fullPurchaseAmount" binding:"omitempty,gte=0"`
	PaymentModes          []PaymentEntry    `json:"paymentModes"`
	Expenses              *TruckExpenses    `json:"expenses"`
	Status                *TruckStatus      `json:"status" binding:"omitempty,oneof=available sold maintenance noc-pending"`
	SaleDetails           *SaleDetails      `json:"saleDetails"`
}

func NewTruck(id string, in TruckInput, now time.Time) TruckInventory {
	t := TruckInventory{
		ID:                    id,
		RegistrationNumber:    in.RegistrationNumber,
		Model:                 in.Model,
		InitialModelYear:      in.InitialModelYear,
		PurchaseDate:          in.PurchaseDate,
		SellerDetails:         in.SellerDetails,
		NOCApplied:            in.NOCApplied,
		NOCAppliedDate:        in.NOCAppliedDate,
		NOCReceivedDate:       in.NOCReceivedDate,
		NewRegistrationNumber: in.NewRegistrationNumber,
		InsuranceDetails:      in.InsuranceDetails,
		FullPurchaseAmount:    in.FullPurchaseAmount,
		PaymentModes:          clonePayments(in.PaymentModes),
		Expenses:              in.Expenses,
		Status:                in.Status,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if in.SaleDetails != nil {
		sale := *in.SaleDetails
		t.SaleDetails = &sale
		t.Status = TruckSold
	}
	t.refreshProfit()
	return t
}

// Apply merges the generic patch onto a copy of t. SaleDetails in the
// patch is ignored here. Profit is refreshed from the merged record so a
// sold truck stays consistent after cost corrections.
func (t TruckInventory) Apply(p TruckPatch, now time.Time) TruckInventory {
	if p.RegistrationNumber != nil {
		t.RegistrationNumber = *p.RegistrationNumber
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.InitialModelYear != nil {
		t.InitialModelYear = *p.InitialModelYear
	}
	if p.PurchaseDate != nil {
		t.PurchaseDate = *p.PurchaseDate
	}
	if p.SellerDetails != nil {
		t.SellerDetails = *p.SellerDetails
	}
	if p.NOCApplied != nil {
		t.NOCApplied = *p.NOCApplied
	}
	if p.NOCAppliedDate != nil {
		t.NOCAppliedDate = *p.NOCAppliedDate
	}
	if p.NOCReceivedDate != nil {
		t.NOCReceivedDate = *p.NOCReceivedDate
	}
	if p.NewRegistrationNumber != nil {
		t.NewRegistrationNumber = *p.NewRegistrationNumber
	}
	if p.InsuranceDetails != nil {
		t.InsuranceDetails = *p.InsuranceDetails
	}
	if p.FullPurchaseAmount != nil {
		t.FullPurchaseAmount = *p.FullPurchaseAmount
	}
	if p.PaymentModes != nil {
		t.PaymentModes = clonePayments(p.PaymentModes)
	}
	if p.Expenses != nil {
		t.Expenses = *p.Expenses
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	t.refreshProfit()
	t.UpdatedAt = now
	return t
}

// Sell is the one transition into TruckSold.
func (t TruckInventory) Sell(sale SaleDetails, now time.Time) TruckInventory {
	t.SaleDetails = &sale
	t.Status = TruckSold
	t.refreshProfit()
	t.UpdatedAt = now
	return t
}

// CorrectSale replaces the sale details of a sold truck without touching
// its status.
func (t TruckInventory) CorrectSale(sale SaleDetails, now time.Time) TruckInventory {
	t.SaleDetails = &sale
	t.refreshProfit()
	t.UpdatedAt = now
	return t
}

// Clone returns a copy that shares no pointers or slices with t.
func (t TruckInventory) Clone() TruckInventory {
	t.PaymentModes = clonePayments(t.PaymentModes)
	if t.SaleDetails != nil {
		sale := *t.SaleDetails
		t.SaleDetails = &sale
	}
	if t.Profit != nil {
		p := *t.Profit
		t.Profit = &p
	}
	return t
}

func clonePayments(in []PaymentEntry) []PaymentEntry {
	if in == nil {
		return []PaymentEntry{}
	}
	out := make([]PaymentEntry, len(in))
	copy(out, in)
	return out
}
