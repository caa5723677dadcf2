package authoriser

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/career-compass-zm/job-board/internal/user"
)

type Authoriser struct {
	userRepo *user.Repository
}

type SignUpRq struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Password string `json:"password" validate:"required,min=8"`
	Type     string `json:"type" validate:"required,oneof=seeker recruiter"`
}

type SignInRq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthRes struct {
	UserID      string
	Email       string
	FullName    string
	Type        string
	IsRecruiter bool
	Valid       bool
}

func NewAuthoriser(userRepo *user.Repository) Authoriser {
	return Authoriser{userRepo: userRepo}
}

// SignUp registers the account and signs it in.
func (a Authoriser) SignUp(rq SignUpRq, now time.Time) (AuthRes, error) {
	u, err := a.userRepo.Register(rq.Email, rq.FullName, rq.Password, rq.Type, now)
	if err != nil {
		return AuthRes{}, errors.Wrap(err, "unable to register user")
	}
	return authResFor(u), nil
}

// SignIn checks the password against the stored bcrypt hash. Wrong
// password and unknown email both come back as an invalid result, not
// an error.
func (a Authoriser) SignIn(rq SignInRq) AuthRes {
	u, err := a.userRepo.ByEmail(rq.Email)
	if err != nil {
		return AuthRes{}
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(rq.Password)) != nil {
		return AuthRes{}
	}
	return authResFor(u)
}

func authResFor(u user.User) AuthRes {
	return AuthRes{
		UserID:      u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Type:        u.Type,
		IsRecruiter: u.IsRecruiter(),
		Valid:       true,
	}
}
