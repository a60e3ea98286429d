package services

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"transportpro/internal/domain"
	"transportpro/internal/domain/models"
	"transportpro/internal/repositories"
	"transportpro/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen      = 3
	minPasswordLen      = 6
	tempPasswordLen     = 10
	tempPasswordCharset = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)
)

// UserService manages back-office accounts. Store invariants (unique
// username/email, at least one admin) are enforced by the repository;
// field rules live here.
type UserService struct {
	Repo      *repositories.UserRepository
	HashCost  int
	RequestID string
}

func (s UserService) cost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

func (s UserService) AddUser(in models.UserInput) (models.User, error) {
	if err := normalizeUserInput(&in); err != nil {
		utils.LogEvent(s.RequestID, "users", "add_rejected", err.Error())
		return models.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u, err := s.Repo.Create(models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         in.Role,
		Status:       in.Status,
		Department:   in.Department,
		Phone:        in.Phone,
		Permissions:  models.NormalizePermissions(in.Role, in.Permissions),
		PasswordHash: string(hash),
		CreatedAt:    utils.NowUTC(),
	})
	if err != nil {
		utils.LogEventf(s.RequestID, "users", "add_rejected", "username=%s err=%s", in.Username, err.Error())
		return models.User{}, err
	}
	utils.LogEventf(s.RequestID, "users", "add", "id=%s username=%s role=%s", u.ID, u.Username, u.Role)
	return u, nil
}

// UpdateUser merges the patch. The username cannot change and the last
// admin cannot be demoted.
func (s UserService) UpdateUser(id string, patch models.UserPatch) (models.User, error) {
	if err := normalizeUserPatch(&patch); err != nil {
		return models.User{}, err
	}
	u, found, err := s.Repo.Modify(id, func(cur models.User) (models.User, error) {
		if patch.Username != nil && *patch.Username != cur.Username {
			return cur, domain.ValidationError{Field: "username", Msg: "cannot be changed"}
		}
		next := cur.Apply(patch)
		if next.Role == models.RoleStaff && len(next.Permissions) == 0 {
			return cur, domain.ValidationError{Field: "permissions", Msg: "staff users need at least one permission"}
		}
		return next, nil
	})
	if !found {
		return models.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		utils.LogEventf(s.RequestID, "users", "update_rejected", "id=%s err=%s", id, err.Error())
		return models.User{}, err
	}
	utils.LogEventf(s.RequestID, "users", "update", "id=%s role=%s status=%s", u.ID, u.Role, u.Status)
	return u, nil
}

func (s UserService) DeleteUser(id string) error {
	found, err := s.Repo.Delete(id)
	if !found {
		return domain.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		utils.LogEventf(s.RequestID, "users", "delete_rejected", "id=%s err=%s", id, err.Error())
		return err
	}
	utils.LogEventf(s.RequestID, "users", "delete", "id=%s", id)
	return nil
}

// ToggleUserStatus moves an active user to inactive and any other user
// to active.
func (s UserService) ToggleUserStatus(id string) (models.User, error) {
	return s.setStatus(id, "toggle_status", func(cur models.UserStatus) models.UserStatus {
		if cur == models.UserActive {
			return models.UserInactive
		}
		return models.UserActive
	})
}

func (s UserService) SetUserStatus(id string, status models.UserStatus) (models.User, error) {
	if !status.Valid() {
		return models.User{}, domain.ValidationError{Field: "status", Msg: "unknown user status"}
	}
	return s.setStatus(id, "set_status", func(models.UserStatus) models.UserStatus { return status })
}

func (s UserService) setStatus(id, action string, next func(models.UserStatus) models.UserStatus) (models.User, error) {
	u, found, err := s.Repo.Modify(id, func(cur models.User) (models.User, error) {
		cur.Status = next(cur.Status)
		return cur, nil
	})
	if !found {
		return models.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return models.User{}, err
	}
	utils.LogEventf(s.RequestID, "users", action, "id=%s status=%s", u.ID, u.Status)
	return u, nil
}

// ResetUserPassword stores a fresh random password and returns it. The
// plain value is not kept anywhere.
func (s UserService) ResetUserPassword(id string) (string, error) {
	if _, ok := s.Repo.Get(id); !ok {
		return "", domain.NotFoundError{Resource: "user", ID: id}
	}
	temp, err := randomPassword(tempPasswordLen)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to generate password", Err: err}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(temp), s.cost())
	if err != nil {
		return "", domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	_, found, err := s.Repo.Modify(id, func(cur models.User) (models.User, error) {
		cur.PasswordHash = string(hash)
		return cur, nil
	})
	if !found {
		return "", domain.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return "", err
	}
	utils.LogEventf(s.RequestID, "users", "reset_password", "id=%s", id)
	return temp, nil
}

func (s UserService) GetUser(id string) (models.User, error) {
	u, ok := s.Repo.Get(id)
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	return u, nil
}

func (s UserService) ListUsers() []models.User {
	return s.Repo.List()
}

func (s UserService) GetUsersByRole(role models.Role) ([]models.User, error) {
	if !role.Valid() {
		return nil, domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	return s.Repo.ByRole(role), nil
}

func (s UserService) SearchUsers(query string) []models.User {
	return s.Repo.Search(query)
}

func normalizeUserInput(in *models.UserInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = utils.NormalizeSpace(in.FullName)
	in.Department = utils.NormalizeSpace(in.Department)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Role == "" {
		in.Role = models.RoleStaff
	}
	if in.Status == "" {
		in.Status = models.UserActive
	}

	switch {
	case len(in.Username) < minUsernameLen:
		return domain.ValidationError{Field: "username", Msg: "must be at least 3 characters"}
	case !emailPattern.MatchString(in.Email):
		return domain.ValidationError{Field: "email", Msg: "invalid email format"}
	case in.FullName == "":
		return domain.ValidationError{Field: "fullName", Msg: "is required"}
	case in.Phone != "" && !phonePattern.MatchString(in.Phone):
		return domain.ValidationError{Field: "phone", Msg: "invalid phone number format"}
	case !in.Role.Valid():
		return domain.ValidationError{Field: "role", Msg: "unknown role"}
	case !in.Status.Valid():
		return domain.ValidationError{Field: "status", Msg: "unknown user status"}
	case len(in.Password) < minPasswordLen:
		return domain.ValidationError{Field: "password", Msg: "must be at least 6 characters"}
	}
	if err := validatePermissions(in.Permissions); err != nil {
		return err
	}
	if in.Role == models.RoleStaff && len(in.Permissions) == 0 {
		return domain.ValidationError{Field: "permissions", Msg: "staff users need at least one permission"}
	}
	return nil
}

func normalizeUserPatch(p *models.UserPatch) error {
	if p.Username != nil {
		v := strings.TrimSpace(*p.Username)
		p.Username = &v
	}
	if p.Email != nil {
		v := strings.TrimSpace(*p.Email)
		if !emailPattern.MatchString(v) {
			return domain.ValidationError{Field: "email", Msg: "invalid email format"}
		}
		p.Email = &v
	}
	if p.FullName != nil {
		v := utils.NormalizeSpace(*p.FullName)
		if v == "" {
			return domain.ValidationError{Field: "fullName", Msg: "is required"}
		}
		p.FullName = &v
	}
	if p.Department != nil {
		v := utils.NormalizeSpace(*p.Department)
		p.Department = &v
	}
	if p.Phone != nil {
		v := strings.TrimSpace(*p.Phone)
		if v != "" && !phonePattern.MatchString(v) {
			return domain.ValidationError{Field: "phone", Msg: "invalid phone number format"}
		}
		p.Phone = &v
	}
	if p.Role != nil && !p.Role.Valid() {
		return domain.ValidationError{Field: "role", Msg: "unknown role"}
	}
	if p.Status != nil && !p.Status.Valid() {
		return domain.ValidationError{Field: "status", Msg: "unknown user status"}
	}
	return validatePermissions(p.Permissions)
}

func validatePermissions(perms []string) error {
	for _, p := range perms {
		if !models.IsKnownPermission(p) {
			return domain.ValidationError{Field: "permissions", Msg: "unknown permission " + p}
		}
	}
	return nil
}

func randomPassword(n int) (string, error) {
	max := big.NewInt(int64(len(tempPasswordCharset)))
	var b strings.Builder
	for i := 0; i < n; i++ {
		k, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(tempPasswordCharset[k.Int64()])
	}
	return b.String(), nil
}
