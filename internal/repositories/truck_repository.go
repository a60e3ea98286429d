package repositories

import (
	"strings"
	"sync"
	"time"

	"transportpro/internal/domain/models"
	"transportpro/internal/utils"
)

const truckIDPrefix = "TRK"

// TruckRepository keeps the second-hand truck inventory in memory.
type TruckRepository struct {
	mu        sync.RWMutex
	trucks    []models.TruckInventory
	seq       int
	catalogue []string
	Now       func() time.Time
}

func NewTruckRepository(seed []models.TruckInventory, catalogue []string) *TruckRepository {
	r := &TruckRepository{
		trucks:    make([]models.TruckInventory, 0, len(seed)),
		catalogue: append([]string{}, catalogue...),
	}
	for _, t := range seed {
		t = t.Clone()
		if p, ok := models.TruckProfit(t); ok {
			t.Profit = &p
		} else {
			t.Profit = nil
		}
		r.trucks = append(r.trucks, t)
		if n, ok := utils.SequenceOf(truckIDPrefix, t.ID); ok && n > r.seq {
			r.seq = n
		}
	}
	if r.seq < len(r.trucks) {
		r.seq = len(r.trucks)
	}
	return r
}

func (r *TruckRepository) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return utils.NowUTC()
}

// Add assigns the next id. Profit is set only when sale details come
// with the truck.
func (r *TruckRepository) Add(in models.TruckInput) models.TruckInventory {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	t := models.NewTruck(utils.PadID(truckIDPrefix, r.seq), in, r.now())
	r.trucks = append(r.trucks, t)
	return t.Clone()
}

// Modify replaces the stored truck with fn's result under the write lock.
// found is false for an unknown id; an error from fn leaves the store
// untouched.
func (r *TruckRepository) Modify(id string, fn func(current models.TruckInventory, now time.Time) (models.TruckInventory, error)) (updated models.TruckInventory, found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.TruckInventory{}, false, nil
	}
	next, err := fn(r.trucks[i].Clone(), r.now())
	if err != nil {
		return models.TruckInventory{}, true, err
	}
	next.ID = r.trucks[i].ID
	next.CreatedAt = r.trucks[i].CreatedAt
	r.trucks[i] = next.Clone()
	return next, true, nil
}

func (r *TruckRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.trucks = append(r.trucks[:i], r.trucks[i+1:]...)
	return true
}

func (r *TruckRepository) Get(id string) (models.TruckInventory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.TruckInventory{}, false
	}
	return r.trucks[i].Clone(), true
}

func (r *TruckRepository) List() []models.TruckInventory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TruckInventory, 0, len(r.trucks))
	for _, t := range r.trucks {
		out = append(out, t.Clone())
	}
	return out
}

// Search matches query against registration, model and seller name.
func (r *TruckRepository) Search(query string, status models.TruckStatus) []models.TruckInventory {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.TruckInventory{}
	for _, t := range r.List() {
		if status != "" && t.Status != status {
			continue
		}
		if q != "" &&
			!utils.ContainsFold(t.ID, q) &&
			!utils.ContainsFold(t.RegistrationNumber, q) &&
			!utils.ContainsFold(t.Model, q) &&
			!utils.ContainsFold(t.SellerDetails.Name, q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Models is the truck model catalogue offered when adding a truck.
func (r *TruckRepository) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.catalogue...)
}

func (r *TruckRepository) indexOf(id string) int {
	for i := range r.trucks {
		if r.trucks[i].ID == id {
			return i
		}
	}
	return -1
}
