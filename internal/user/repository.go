package user

import (
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Repository keeps accounts in memory for the session. Emails are
// compared case-insensitively.
type Repository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewRepository() *Repository {
	return &Repository{users: make(map[string]User)}
}

// Register creates an account with a bcrypt password hash.
func (r *Repository) Register(email, fullName, password, userType string, now time.Time) (User, error) {
	if userType != TypeSeeker && userType != TypeRecruiter {
		return User{}, errors.Errorf("unknown user type %q", userType)
	}
	key := strings.ToLower(strings.TrimSpace(email))
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, errors.Wrap(err, "unable to hash password")
	}
	u := User{
		ID:           ksuid.New().String(),
		Email:        key,
		FullName:     fullName,
		Type:         userType,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[key]; ok {
		return User{}, ErrEmailTaken
	}
	r.users[key] = u
	return u, nil
}

func (r *Repository) ByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return User{}, ErrUserNotFound
	}
	u.CreatedAtHumanised = humanize.Time(u.CreatedAt)
	return u, nil
}

func (r *Repository) ByID(id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			u.CreatedAtHumanised = humanize.Time(u.CreatedAt)
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}
