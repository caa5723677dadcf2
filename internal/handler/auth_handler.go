package handler

import (
	"net/http"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/career-compass-zm/job-board/internal/authoriser"
	"github.com/career-compass-zm/job-board/internal/middleware"
	"github.com/career-compass-zm/job-board/internal/server"
)

func GetAuthPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := r.URL.Query().Get("next")
		svr.Render(w, http.StatusOK, "auth.html", map[string]interface{}{
			"Next": next,
		})
	}
}

func SignUpHandler(svr server.Server, auth authoriser.Authoriser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form submission")
			return
		}
		rq := authoriser.SignUpRq{
			Email:    strings.TrimSpace(r.Form.Get("email")),
			FullName: strings.TrimSpace(r.Form.Get("full_name")),
			Password: r.Form.Get("password"),
			Type:     r.Form.Get("type"),
		}
		if err := validate.Struct(rq); err != nil {
			svr.Render(w, http.StatusBadRequest, "auth.html", map[string]interface{}{
				"Error": "Please check your details. " + validationMessage(err),
			})
			return
		}
		res, err := auth.SignUp(rq, time.Now())
		if err != nil {
			svr.Log(err, "unable to sign up user")
			svr.Render(w, http.StatusBadRequest, "auth.html", map[string]interface{}{
				"Error": "That email address is already registered.",
			})
			return
		}
		signOnUser(svr, w, r, res)
	}
}

func SignInHandler(svr server.Server, auth authoriser.Authoriser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form submission")
			return
		}
		res := auth.SignIn(authoriser.SignInRq{
			Email:    strings.TrimSpace(r.Form.Get("email")),
			Password: r.Form.Get("password"),
		})
		if !res.Valid {
			svr.Render(w, http.StatusUnauthorized, "auth.html", map[string]interface{}{
				"Error": "Invalid email or password.",
			})
			return
		}
		signOnUser(svr, w, r, res)
	}
}

func signOnUser(svr server.Server, w http.ResponseWriter, r *http.Request, res authoriser.AuthRes) {
	sess, err := svr.SessionStore.Get(r, middleware.SessionName)
	if err != nil {
		svr.TEXT(w, http.StatusInternalServerError, "unable to open session")
		return
	}
	stdClaims := &jwt.StandardClaims{
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour).UTC().Unix(),
		IssuedAt:  time.Now().UTC().Unix(),
		Issuer:    svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost,
	}
	claims := middleware.UserJWT{
		UserID:         res.UserID,
		Email:          res.Email,
		FullName:       res.FullName,
		Type:           res.Type,
		IsRecruiter:    res.IsRecruiter,
		CreatedAt:      time.Now(),
		StandardClaims: *stdClaims,
	}
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := tkn.SignedString(svr.GetJWTSigningKey())
	if err != nil {
		svr.Log(err, "unable to sign jwt")
		svr.TEXT(w, http.StatusInternalServerError, "unable to sign in")
		return
	}
	sess.Values["jwt"] = ss
	if err := sess.Save(r, w); err != nil {
		svr.Log(err, "unable to save jwt into session cookie")
		svr.TEXT(w, http.StatusInternalServerError, "unable to sign in")
		return
	}
	next := r.URL.Query().Get("next")
	if next == "" {
		next = "/dashboard"
	}
	svr.Redirect(w, r, http.StatusSeeOther, next)
}

func SignOutHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err == nil {
			delete(sess.Values, "jwt")
			sess.Options.MaxAge = -1
			sess.Save(r, w)
		}
		svr.Redirect(w, r, http.StatusSeeOther, "/")
	}
}
