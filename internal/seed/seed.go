// Package seed holds the demo data the stores start with.
package seed

import (
	"time"

	"transportpro/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

// Data is everything the stores are seeded with.
type Data struct {
	Trips       []models.Trip
	Fleet       []string
	Trucks      []models.TruckInventory
	TruckModels []string
	Users       []models.User
}

// Credentials are the demo logins. Other seeded users have no password
// and cannot log in until an admin resets it.
var Credentials = map[string]string{
	"admin": "admin123",
	"staff": "staff123",
}

// Static returns a fresh copy of the demo data with password hashes
// computed at the given bcrypt cost.
func Static(cost int) (Data, error) {
	users := Users()
	for i := range users {
		pw, ok := Credentials[users[i].Username]
		if !ok {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
		if err != nil {
			return Data{}, err
		}
		users[i].PasswordHash = string(hash)
	}
	return Data{
		Trips:       Trips(),
		Fleet:       Fleet(),
		Trucks:      Trucks(),
		TruckModels: TruckModels(),
		Users:       users,
	}, nil
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}
