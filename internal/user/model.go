package user

import "time"

const (
	TypeSeeker    = "seeker"
	TypeRecruiter = "recruiter"
)

type User struct {
	ID                 string
	Email              string
	FullName           string
	Type               string
	PasswordHash       []byte
	CreatedAtHumanised string
	CreatedAt          time.Time
}

// IsRecruiter reports whether the account is an employer account.
func (u User) IsRecruiter() bool {
	return u.Type == TypeRecruiter
}
