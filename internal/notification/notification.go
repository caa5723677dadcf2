package notification

import (
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/segmentio/ksuid"
)

const (
	TypeApplication = "application"
	TypeShortlist   = "shortlist"
	TypeRejection   = "rejection"
	TypeGeneral     = "general"
)

// Notification is a user-facing event record. The read flag moves one
// way only: unread to read, never back.
type Notification struct {
	ID      string
	UserID  string
	Message string
	Date    time.Time
	Read    bool
	Type    string

	DateHumanised string
}

// Store is the session-scoped append-only notification list.
type Store struct {
	mu            sync.RWMutex
	notifications []Notification
}

func NewStore(seed []Notification) *Store {
	notifications := make([]Notification, len(seed))
	copy(notifications, seed)
	return &Store{notifications: notifications}
}

// Add prepends a new notification for the given user.
func (s *Store) Add(userID, message, notificationType string, now time.Time) Notification {
	n := Notification{
		ID:      ksuid.New().String(),
		UserID:  userID,
		Message: message,
		Date:    now,
		Type:    notificationType,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]Notification{n}, s.notifications...)
	return n
}

// ListForUser returns the user's notifications, newest first, with
// humanised dates for display.
func (s *Store) ListForUser(userID string) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if n.UserID == userID || n.UserID == "" {
			n.DateHumanised = humanize.Time(n.Date)
			out = append(out, n)
		}
	}
	return out
}

// MarkAsRead flips the read flag on. There is no way back to unread.
func (s *Store) MarkAsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

// Delete removes the notification permanently.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return true
		}
	}
	return false
}

// UnreadCount feeds the header badge.
func (s *Store) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read && (n.UserID == userID || n.UserID == "") {
			count++
		}
	}
	return count
}

// Seed returns the notifications the store starts the session with.
func Seed(now time.Time) []Notification {
	return []Notification{
		{
			ID:      ksuid.New().String(),
			Message: "Welcome to Career Compass Zambia! Complete your profile to start applying for jobs.",
			Date:    now.AddDate(0, 0, -1),
			Read:    true,
			Type:    TypeGeneral,
		},
		{
			ID:      ksuid.New().String(),
			Message: "Your application for Senior Accountant at Pro-Finance Ltd has been viewed by the recruiter.",
			Date:    now.Add(-8 * time.Hour),
			Read:    true,
			Type:    TypeApplication,
		},
		{
			ID:      ksuid.New().String(),
			Message: "Congratulations! You have been shortlisted for the Registered Nurse position at Ndola Central Hospital. Expect an email with interview details soon.",
			Date:    now.Add(-2 * time.Hour),
			Type:    TypeShortlist,
		},
		{
			ID:      ksuid.New().String(),
			Message: "Regarding your application for ICT Officer: the position has been filled. We wish you the best in your job search and encourage you to apply for other roles.",
			Date:    now.AddDate(0, 0, -2),
			Type:    TypeRejection,
		},
	}
}
