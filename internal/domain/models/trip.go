package models

import "time"

type TripStatus string

const (
	TripPlanned   TripStatus = "planned"
	TripInTransit TripStatus = "in-transit"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripPlanned, TripInTransit, TripCompleted, TripCancelled:
		return true
	default:
		return false
	}
}

// Active reports whether the trip still occupies a truck.
func (s TripStatus) Active() bool {
	return s == TripPlanned || s == TripInTransit
}

type TripExpenses struct {
	Diesel float64 `json:"diesel" binding:"gte=0"`
	Toll   float64 `json:"toll" binding:"gte=0"`
	Driver float64 `json:"driver" binding:"gte=0"`
	Other  float64 `json:"other" binding:"gte=0"`
}

func (e TripExpenses) Total() float64 {
	return e.Diesel + e.Toll + e.Driver + e.Other
}

// Trip is one logged haul. Profit is derived and only written by the store.
type Trip struct {
	ID                string       `json:"id"`
	TruckRegistration string       `json:"truckRegistration"`
	Source            string       `json:"source"`
	Destination       string       `json:"destination"`
	StartDate         string       `json:"startDate"`
	ReturnDate        string       `json:"returnDate"`
	Distance          float64      `json:"distance"`
	Expenses          TripExpenses `json:"expenses"`
	Revenue           float64      `json:"revenue"`
	Profit            float64      `json:"profit"`
	Status            TripStatus   `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// TripInput is the create payload; it has no id, profit or timestamps.
type TripInput struct {
	TruckRegistration string       `json:"truckRegistration" binding:"required"`
	Source            string       `json:"source" binding:"required"`
	Destination       string       `json:"destination" binding:"required"`
	StartDate         string       `json:"startDate" binding:"required"`
	ReturnDate        string       `json:"returnDate"`
	Distance          float64      `json:"distance" binding:"gte=0"`
	Expenses          TripExpenses `json:"expenses"`
	Revenue           float64      `json:"revenue" binding:"gte=0"`
	Status            TripStatus   `json:"status" binding:"omitempty,oneof=planned in-transit completed cancelled"`
}

// TripPatch supports partial updates via key presence.
type TripPatch struct {
	TruckRegistration *string       `json:"truckRegistration"`
	Source            *string       `json:"source"`
	Destination       *string       `json:"destination"`
	StartDate         *string       `json:"startDate"`
	ReturnDate        *string       `json:"returnDate"`
	Distance          *float64      `json:"distance" binding:"omitempty,gte=0"`
	Expenses          *TripExpenses `json:"expenses"`
	Revenue           *float64      `json:"revenue" binding:"omitempty,gte=0"`
	Status            *TripStatus   `json:"status" binding:"omitempty,oneof=planned in-transit completed cancelled"`
}

// TouchesProfit reports whether applying the patch changes a profit input.
func (p TripPatch) TouchesProfit() bool {
	return p.Expenses != nil || p.Revenue != nil
}

// TripProfit is revenue minus the four trip expense heads.
func TripProfit(expenses TripExpenses, revenue float64) float64 {
	return revenue - expenses.Total()
}

// NewTrip builds a stored trip from input, always deriving profit.
func NewTrip(id string, in TripInput, now time.Time) Trip {
	return Trip{
		ID:                id,
		TruckRegistration: in.TruckRegistration,
		Source:            in.Source,
		Destination:       in.Destination,
		StartDate:         in.StartDate,
		ReturnDate:        in.ReturnDate,
		Distance:          in.Distance,
		Expenses:          in.Expenses,
		Revenue:           in.Revenue,
		Profit:            TripProfit(in.Expenses, in.Revenue),
		Status:            in.Status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Apply merges the patch onto a copy of t. Profit is recomputed from the
// merged record when expenses or revenue are part of the patch.
func (t Trip) Apply(p TripPatch, now time.Time) Trip {
	if p.TruckRegistration != nil {
		t.TruckRegistration = *p.TruckRegistration
	}
	if p.Source != nil {
		t.Source = *p.Source
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.ReturnDate != nil {
		t.ReturnDate = *p.ReturnDate
	}
	if p.Distance != nil {
		t.Distance = *p.Distance
	}
	if p.Expenses != nil {
		t.Expenses = *p.Expenses
	}
	if p.Revenue != nil {
		t.Revenue = *p.Revenue
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.TouchesProfit() {
		t.Profit = TripProfit(t.Expenses, t.Revenue)
	}
	t.UpdatedAt = now
	return t
}
