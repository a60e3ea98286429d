package repositories

import (
	"strconv"
	"strings"
	"sync"

	"transportpro/internal/domain"
	"transportpro/internal/domain/models"
	"transportpro/internal/utils"
)

// UserRepository holds back-office accounts. It enforces the two store
// invariants itself: unique username/email and at least one admin.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
	seq   int
}

func NewUserRepository(seed []models.User) *UserRepository {
	r := &UserRepository{users: make([]models.User, 0, len(seed))}
	for _, u := range seed {
		u = u.Clone()
		u.Permissions = models.NormalizePermissions(u.Role, u.Permissions)
		r.users = append(r.users, u)
		if n, err := strconv.Atoi(u.ID); err == nil && n > r.seq {
			r.seq = n
		}
	}
	if r.seq < len(r.users) {
		r.seq = len(r.users)
	}
	return r
}

// Create stores u under the next id. Duplicate username or email (exact,
// case-sensitive) is a conflict and nothing is stored.
func (r *UserRepository) Create(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique("", u.Username, u.Email); err != nil {
		return models.User{}, err
	}
	r.seq++
	u = u.Clone()
	u.ID = strconv.Itoa(r.seq)
	r.users = append(r.users, u)
	return u.Clone(), nil
}

// Modify replaces the stored user with fn's result. The email must stay
// unique and the last admin cannot lose the role.
func (r *UserRepository) Modify(id string, fn func(current models.User) (models.User, error)) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.User{}, false, nil
	}
	current := r.users[i]
	next, err := fn(current.Clone())
	if err != nil {
		return models.User{}, true, err
	}
	next.ID = current.ID
	next.Username = current.Username
	next.CreatedAt = current.CreatedAt

	if next.Email != current.Email {
		if err := r.checkUnique(current.ID, "", next.Email); err != nil {
			return models.User{}, true, err
		}
	}
	if current.Role == models.RoleAdmin && next.Role != models.RoleAdmin && r.adminCount() <= 1 {
		return models.User{}, true, domain.ConflictError{Resource: "user", Msg: "cannot demote the last admin user"}
	}
	r.users[i] = next.Clone()
	return next, true, nil
}

// Delete removes the user unless it is the last admin.
func (r *UserRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	if r.users[i].Role == models.RoleAdmin && r.adminCount() <= 1 {
		return true, domain.ConflictError{Resource: "user", Msg: "cannot delete the last admin user"}
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return true, nil
}

func (r *UserRepository) Get(id string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.User{}, false
	}
	return r.users[i].Clone(), true
}

// FindByUsername is an exact, case-sensitive lookup.
func (r *UserRepository) FindByUsername(username string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

func (r *UserRepository) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out
}

func (r *UserRepository) ByRole(role models.Role) []models.User {
	out := []models.User{}
	for _, u := range r.List() {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// Search matches username, email, full name or department
// case-insensitively. A blank query returns everyone.
func (r *UserRepository) Search(query string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))
	all := r.List()
	if q == "" {
		return all
	}
	out := []models.User{}
	for _, u := range all {
		if utils.ContainsFold(u.Username, q) ||
			utils.ContainsFold(u.Email, q) ||
			utils.ContainsFold(u.FullName, q) ||
			utils.ContainsFold(u.Department, q) {
			out = append(out, u)
		}
	}
	return out
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRepository) checkUnique(skipID, username, email string) error {
	for _, u := range r.users {
		if u.ID == skipID {
			continue
		}
		if username != "" && u.Username == username {
			return domain.ConflictError{Resource: "user", Msg: "username already exists"}
		}
		if email != "" && u.Email == email {
			return domain.ConflictError{Resource: "user", Msg: "email already exists"}
		}
	}
	return nil
}

func (r *UserRepository) adminCount() int {
	n := 0
	for _, u := range r.users {
		if u.Role == models.RoleAdmin {
			n++
		}
	}
	return n
}

func (r *UserRepository) indexOf(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
