package repositories

import (
	"strings"
	"sync"
	"time"

	"transportpro/internal/domain/models"
	"transportpro/internal/utils"
)

const tripIDPrefix = "TRP"

// TripRepository keeps the trip log in memory, in insertion order.
// Reads hand out copies; profit is derived on every write.
type TripRepository struct {
	mu    sync.RWMutex
	trips []models.Trip
	seq   int
	fleet []string
	Now   func() time.Time
}

// NewTripRepository seeds the store. Seeded profits are re-derived so a
// bad seed cannot break the profit invariant.
func NewTripRepository(seed []models.Trip, fleet []string) *TripRepository {
	r := &TripRepository{
		trips: make([]models.Trip, 0, len(seed)),
		fleet: append([]string{}, fleet...),
	}
	for _, t := range seed {
		t.Profit = models.TripProfit(t.Expenses, t.Revenue)
		r.trips = append(r.trips, t)
		if n, ok := utils.SequenceOf(tripIDPrefix, t.ID); ok && n > r.seq {
			r.seq = n
		}
	}
	if r.seq < len(r.trips) {
		r.seq = len(r.trips)
	}
	return r
}

func (r *TripRepository) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return utils.NowUTC()
}

// Add assigns the next id, derives profit and appends.
func (r *TripRepository) Add(in models.TripInput) models.Trip {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	t := models.NewTrip(utils.PadID(tripIDPrefix, r.seq), in, r.now())
	r.trips = append(r.trips, t)
	return t
}

// Modify replaces the stored trip with fn's result under the write lock,
// so checks inside fn see the record they are about to overwrite. found is
// false for an unknown id; an error from fn leaves the store untouched.
func (r *TripRepository) Modify(id string, fn func(cur models.Trip, now time.Time) (models.Trip, error)) (updated models.Trip, found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Trip{}, false, nil
	}
	next, err := fn(r.trips[i], r.now())
	if err != nil {
		return models.Trip{}, true, err
	}
	next.ID = r.trips[i].ID
	next.CreatedAt = r.trips[i].CreatedAt
	next.Profit = models.TripProfit(next.Expenses, next.Revenue)
	r.trips[i] = next
	return next, true, nil
}

// Delete removes the trip without any referential checks.
func (r *TripRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.trips = append(r.trips[:i], r.trips[i+1:]...)
	return true
}

func (r *TripRepository) Get(id string) (models.Trip, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Trip{}, false
	}
	return r.trips[i], true
}

// List returns a snapshot in insertion order.
func (r *TripRepository) List() []models.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Trip, len(r.trips))
	copy(out, r.trips)
	return out
}

// Search matches query against id, truck, source and destination
// (case-insensitive) and status exactly. Empty arguments match all.
func (r *TripRepository) Search(query string, status models.TripStatus) []models.Trip {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Trip{}
	for _, t := range r.List() {
		if status != "" && t.Status != status {
			continue
		}
		if q != "" &&
			!utils.ContainsFold(t.ID, q) &&
			!utils.ContainsFold(t.TruckRegistration, q) &&
			!utils.ContainsFold(t.Source, q) &&
			!utils.ContainsFold(t.Destination, q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Fleet lists the truck registrations trips can be logged against.
func (r *TripRepository) Fleet() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.fleet...)
}

func (r *TripRepository) indexOf(id string) int {
	for i := range r.trips {
		if r.trips[i].ID == id {
			return i
		}
	}
	return -1
}
