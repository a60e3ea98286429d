package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"transportpro/internal/domain"
	"transportpro/internal/domain/models"
	"transportpro/internal/metrics"
	"transportpro/internal/repositories"
	"transportpro/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

var errInvalidCredentials = domain.UnauthorizedError{Msg: "invalid username or password"}

// SessionClaims is the JWT payload. Subject carries the user id and ID
// the token id used for revocation.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session is an authenticated user plus the token that proves it.
type Session struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
	TokenID   string      `json:"-"`
}

// Denylist remembers revoked token ids until the tokens would have
// expired anyway.
type Denylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewDenylist() *Denylist {
	return &Denylist{revoked: map[string]time.Time{}}
}

func (d *Denylist) Revoke(jti string, until, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for id, exp := range d.revoked {
		if !exp.After(now) {
			delete(d.revoked, id)
		}
	}
	d.revoked[jti] = until
}

func (d *Denylist) Revoked(jti string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[jti]
	return ok
}

type AuthService struct {
	Users     *repositories.UserRepository
	Secret    []byte
	TTL       time.Duration
	Denylist  *Denylist
	Now       func() time.Time
	RequestID string
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return defaultSessionTTL
}

// Login checks the credentials of an active user, stamps lastLogin and
// issues a signed session token.
func (s AuthService) Login(username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	u, ok := s.Users.FindByUsername(username)
	if !ok || u.PasswordHash == "" {
		s.loginFailed(username, "unknown user")
		return Session{}, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.loginFailed(username, "bad password")
		return Session{}, errInvalidCredentials
	}
	if u.Status != models.UserActive {
		s.loginFailed(username, "status "+string(u.Status))
		return Session{}, domain.UnauthorizedError{Msg: "account is " + string(u.Status)}
	}

	now := s.now()
	u, found, err := s.Users.Modify(u.ID, func(cur models.User) (models.User, error) {
		ts := now
		cur.LastLogin = &ts
		return cur, nil
	})
	if !found {
		return Session{}, errInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	sess, err := s.issue(u, now)
	if err != nil {
		return Session{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	utils.LogEventf(s.RequestID, "auth", "login", "user_id=%s username=%s", u.ID, u.Username)
	return sess, nil
}

func (s AuthService) loginFailed(username, reason string) {
	metrics.LoginAttempts.WithLabelValues("failure").Inc()
	utils.LogEventf(s.RequestID, "auth", "login_failed", "username=%s reason=%s", username, reason)
}

func (s AuthService) issue(u models.User, now time.Time) (Session, error) {
	exp := now.Add(s.ttl())
	claims := SessionClaims{
		Username: u.Username,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: signed, User: u, ExpiresAt: exp, TokenID: claims.ID}, nil
}

// Verify parses the token and returns the session it belongs to. Revoked
// tokens and users that are gone or no longer active are rejected.
func (s AuthService) Verify(token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, domain.UnauthorizedError{Msg: "missing token"}
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	claims := &SessionClaims{}
	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, domain.UnauthorizedError{Msg: "token expired", Err: err}
		}
		return Session{}, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	if s.Denylist != nil && s.Denylist.Revoked(claims.ID) {
		return Session{}, domain.UnauthorizedError{Msg: "token revoked"}
	}

	u, ok := s.Users.Get(claims.Subject)
	if !ok {
		return Session{}, domain.UnauthorizedError{Msg: "user no longer exists"}
	}
	if u.Status != models.UserActive {
		return Session{}, domain.UnauthorizedError{Msg: "account is " + string(u.Status)}
	}

	sess := Session{Token: token, User: u, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// Logout revokes the token so Verify refuses it from now on.
func (s AuthService) Logout(token string) error {
	sess, err := s.Verify(token)
	if err != nil {
		return err
	}
	if s.Denylist != nil {
		s.Denylist.Revoke(sess.TokenID, sess.ExpiresAt, s.now())
	}
	utils.LogEventf(s.RequestID, "auth", "logout", "user_id=%s", sess.User.ID)
	return nil
}
