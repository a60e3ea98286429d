package services

import (
	"strings"
	"time"

	"transportpro/internal/domain"
	"transportpro/internal/domain/models"
	"transportpro/internal/repositories"
	"transportpro/internal/utils"
)

// TransportService validates trip payloads before they reach the store.
type TransportService struct {
	Repo      *repositories.TripRepository
	RequestID string
}

func (s TransportService) AddTrip(in models.TripInput) (models.Trip, error) {
	if err := normalizeTripInput(&in); err != nil {
		utils.LogEvent(s.RequestID, "trips", "add_rejected", err.Error())
		return models.Trip{}, err
	}
	t := s.Repo.Add(in)
	utils.LogEventf(s.RequestID, "trips", "add", "id=%s truck=%s profit=%s", t.ID, t.TruckRegistration, utils.FormatMoney(t.Profit))
	return t, nil
}

// UpdateTrip applies a partial update. Fields absent from the patch keep
// their stored values. The date order is checked against the stored trip
// inside the store lock, so concurrent updates cannot combine into a trip
// that returns before it starts.
func (s TransportService) UpdateTrip(id string, patch models.TripPatch) (models.Trip, error) {
	if err := normalizeTripPatch(&patch); err != nil {
		utils.LogEventf(s.RequestID, "trips", "update_rejected", "id=%s err=%s", id, err.Error())
		return models.Trip{}, err
	}
	t, found, err := s.Repo.Modify(id, func(cur models.Trip, now time.Time) (models.Trip, error) {
		next := cur.Apply(patch, now)
		if next.ReturnDate != "" && next.ReturnDate < next.StartDate {
			return cur, domain.ValidationError{Field: "returnDate", Msg: "must not be before startDate"}
		}
		return next, nil
	})
	if !found {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", ID: id}
	}
	if err != nil {
		utils.LogEventf(s.RequestID, "trips", "update_rejected", "id=%s err=%s", id, err.Error())
		return models.Trip{}, err
	}
	utils.LogEventf(s.RequestID, "trips", "update", "id=%s profit=%s", t.ID, utils.FormatMoney(t.Profit))
	return t, nil
}

func (s TransportService) DeleteTrip(id string) error {
	if !s.Repo.Delete(id) {
		return domain.NotFoundError{Resource: "trip", ID: id}
	}
	utils.LogEventf(s.RequestID, "trips", "delete", "id=%s", id)
	return nil
}

func (s TransportService) GetTrip(id string) (models.Trip, error) {
	t, ok := s.Repo.Get(id)
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", ID: id}
	}
	return t, nil
}

// ListTrips returns every trip, or the ones matching query and status.
func (s TransportService) ListTrips(query, status string) ([]models.Trip, error) {
	st := models.TripStatus(strings.TrimSpace(status))
	if st != "" && !st.Valid() {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown trip status"}
	}
	if strings.TrimSpace(query) == "" && st == "" {
		return s.Repo.List(), nil
	}
	return s.Repo.Search(query, st), nil
}

func (s TransportService) Fleet() []string {
	return s.Repo.Fleet()
}

func normalizeTripInput(in *models.TripInput) error {
	in.TruckRegistration = strings.ToUpper(utils.NormalizeSpace(in.TruckRegistration))
	in.Source = utils.NormalizeSpace(in.Source)
	in.Destination = utils.NormalizeSpace(in.Destination)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.ReturnDate = strings.TrimSpace(in.ReturnDate)
	if in.Status == "" {
		in.Status = models.TripPlanned
	}

	switch {
	case in.TruckRegistration == "":
		return domain.ValidationError{Field: "truckRegistration", Msg: "is required"}
	case in.Source == "":
		return domain.ValidationError{Field: "source", Msg: "is required"}
	case in.Destination == "":
		return domain.ValidationError{Field: "destination", Msg: "is required"}
	case !utils.IsDate(in.StartDate):
		return domain.ValidationError{Field: "startDate", Msg: "must be YYYY-MM-DD"}
	case in.ReturnDate != "" && !utils.IsDate(in.ReturnDate):
		return domain.ValidationError{Field: "returnDate", Msg: "must be YYYY-MM-DD"}
	case in.ReturnDate != "" && in.ReturnDate < in.StartDate:
		return domain.ValidationError{Field: "returnDate", Msg: "must not be before startDate"}
	case in.Distance < 0:
		return domain.ValidationError{Field: "distance", Msg: "must not be negative"}
	case in.Revenue < 0:
		return domain.ValidationError{Field: "revenue", Msg: "must not be negative"}
	case !in.Status.Valid():
		return domain.ValidationError{Field: "status", Msg: "unknown trip status"}
	}
	return validateTripExpenses(in.Expenses)
}

func normalizeTripPatch(p *models.TripPatch) error {
	if p.TruckRegistration != nil {
		v := strings.ToUpper(utils.NormalizeSpace(*p.TruckRegistration))
		if v == "" {
			return domain.ValidationError{Field: "truckRegistration", Msg: "is required"}
		}
		p.TruckRegistration = &v
	}
	if p.Source != nil {
		v := utils.NormalizeSpace(*p.Source)
		if v == "" {
			return domain.ValidationError{Field: "source", Msg: "is required"}
		}
		p.Source = &v
	}
	if p.Destination != nil {
		v := utils.NormalizeSpace(*p.Destination)
		if v == "" {
			return domain.ValidationError{Field: "destination", Msg: "is required"}
		}
		p.Destination = &v
	}
	if p.StartDate != nil {
		v := strings.TrimSpace(*p.StartDate)
		if !utils.IsDate(v) {
			return domain.ValidationError{Field: "startDate", Msg: "must be YYYY-MM-DD"}
		}
		p.StartDate = &v
	}
	if p.ReturnDate != nil {
		v := strings.TrimSpace(*p.ReturnDate)
		if v != "" && !utils.IsDate(v) {
			return domain.ValidationError{Field: "returnDate", Msg: "must be YYYY-MM-DD"}
		}
		p.ReturnDate = &v
	}
	if p.Distance != nil && *p.Distance < 0 {
		return domain.ValidationError{Field: "distance", Msg: "must not be negative"}
	}
	if p.Revenue != nil && *p.Revenue < 0 {
		return domain.ValidationError{Field: "revenue", Msg: "must not be negative"}
	}
	if p.Status != nil && !p.Status.Valid() {
		return domain.ValidationError{Field: "status", Msg: "unknown trip status"}
	}
	if p.Expenses != nil {
		return validateTripExpenses(*p.Expenses)
	}
	return nil
}

func validateTripExpenses(e models.TripExpenses) error {
	if e.Diesel < 0 || e.Toll < 0 || e.Driver < 0 || e.Other < 0 {
		return domain.ValidationError{Field: "expenses", Msg: "must not be negative"}
	}
	return nil
}
