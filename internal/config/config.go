package config

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

type Config struct {
	Port           string
	AdminEmail     string
	SupportEmail   string // displayed on the site for support queries
	SessionKey     []byte
	JwtSigningKey  []byte
	SentryDSN      string
	Env            string // either prod or dev, will disable https and few other bits
	JobsPerPage    int    // configures how many jobs are shown per page result
	TextGenAPIKey  string // api key for the hosted text generation service
	TextGenBaseURL string
	SiteName       string
	SiteHost       string
	URLProtocol    string
}

func LoadConfig() (Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return Config{}, fmt.Errorf("PORT cannot be empty")
	}
	env := os.Getenv("ENV")
	if env == "" {
		return Config{}, fmt.Errorf("ENV cannot be empty")
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return Config{}, fmt.Errorf("ADMIN_EMAIL cannot be empty")
	}
	supportEmail := os.Getenv("SUPPORT_EMAIL")
	if supportEmail == "" {
		return Config{}, fmt.Errorf("SUPPORT_EMAIL cannot be empty")
	}
	sessionKeyString := os.Getenv("SESSION_KEY")
	if sessionKeyString == "" {
		return Config{}, fmt.Errorf("SESSION_KEY cannot be empty")
	}
	sessionKeyBytes, err := base64.StdEncoding.DecodeString(sessionKeyString)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode session key to bytes")
	}
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		return Config{}, fmt.Errorf("JWT_SIGNING_KEY cannot be empty")
	}
	jwtSigningKeyBytes, err := base64.StdEncoding.DecodeString(jwtSigningKey)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode jwt signing key to bytes")
	}
	textGenAPIKey := os.Getenv("TEXTGEN_API_KEY")
	if textGenAPIKey == "" {
		return Config{}, fmt.Errorf("TEXTGEN_API_KEY cannot be empty")
	}
	textGenBaseURL := os.Getenv("TEXTGEN_BASE_URL")
	if textGenBaseURL == "" {
		return Config{}, fmt.Errorf("TEXTGEN_BASE_URL cannot be empty")
	}
	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		return Config{}, fmt.Errorf("SITE_NAME cannot be empty")
	}
	siteHost := os.Getenv("SITE_HOST")
	if siteHost == "" {
		return Config{}, fmt.Errorf("SITE_HOST cannot be empty")
	}
	urlProtocol := "https://"
	if env == "dev" {
		urlProtocol = "http://"
	}

	return Config{
		Port:           port,
		AdminEmail:     adminEmail,
		SupportEmail:   supportEmail,
		SessionKey:     sessionKeyBytes,
		JwtSigningKey:  jwtSigningKeyBytes,
		SentryDSN:      os.Getenv("SENTRY_DSN"),
		Env:            env,
		JobsPerPage:    5,
		TextGenAPIKey:  textGenAPIKey,
		TextGenBaseURL: textGenBaseURL,
		SiteName:       siteName,
		SiteHost:       siteHost,
		URLProtocol:    urlProtocol,
	}, nil
}
