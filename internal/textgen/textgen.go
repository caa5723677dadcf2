package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/career-compass-zm/job-board/internal/profile"
)

var (
	// ErrInvalidInput marks a request rejected before leaving the
	// process. Callers map it to a 400.
	ErrInvalidInput = errors.New("textgen: invalid input")
	// ErrInvalidOutput marks a model response that failed schema
	// validation. Callers map it to a 502.
	ErrInvalidOutput = errors.New("textgen: invalid output")
)

// Client calls the hosted text generation service. Every flow sends a
// JSON body to a flow-specific path and validates both sides of the
// exchange.
type Client struct {
	client   http.Client
	apiKey   string
	baseURL  string
	validate *validator.Validate
}

func NewClient(apiKey, baseURL string) (Client, error) {
	if apiKey == "" {
		return Client{}, errors.New("textgen: api key is empty")
	}
	return Client{
		client:   http.Client{Timeout: 60 * time.Second},
		apiKey:   apiKey,
		baseURL:  baseURL,
		validate: validator.New(),
	}, nil
}

type SuggestSkillTagsRq struct {
	JobDescription string `json:"jobDescription" validate:"required,min=20"`
}

type SuggestSkillTagsRes struct {
	SuggestedSkills []string `json:"suggestedSkills" validate:"required,min=1,dive,required"`
}

// SuggestSkillTags returns skill tags for a job description, for the
// post-a-job form.
func (c Client) SuggestSkillTags(ctx context.Context, rq SuggestSkillTagsRq) (SuggestSkillTagsRes, error) {
	var res SuggestSkillTagsRes
	if err := c.do(ctx, "/v1/flows/suggest-skill-tags", rq, &res); err != nil {
		return SuggestSkillTagsRes{}, err
	}
	return res, nil
}

type GenerateCoverLetterRq struct {
	JobDetails  string `json:"jobDetails" validate:"required,min=20"`
	UserProfile string `json:"userProfile" validate:"required,min=20"`
}

type GenerateCoverLetterRes struct {
	CoverLetter string `json:"coverLetter" validate:"required,min=50"`
}

// GenerateCoverLetter drafts a cover letter from the job details and
// the seeker's profile text.
func (c Client) GenerateCoverLetter(ctx context.Context, rq GenerateCoverLetterRq) (GenerateCoverLetterRes, error) {
	var res GenerateCoverLetterRes
	if err := c.do(ctx, "/v1/flows/generate-cover-letter", rq, &res); err != nil {
		return GenerateCoverLetterRes{}, err
	}
	return res, nil
}

type SummarizeProfileRq struct {
	ProfileText string `json:"profileText" validate:"required,min=20"`
}

type SummarizeProfileRes struct {
	Summary string `json:"summary" validate:"required,min=20"`
}

// SummarizeProfile condenses the seeker's profile into a short
// professional summary.
func (c Client) SummarizeProfile(ctx context.Context, rq SummarizeProfileRq) (SummarizeProfileRes, error) {
	var res SummarizeProfileRes
	if err := c.do(ctx, "/v1/flows/summarize-profile", rq, &res); err != nil {
		return SummarizeProfileRes{}, err
	}
	return res, nil
}

type ParseCVRq struct {
	// CVDataURI carries the uploaded file as a data URI with MIME
	// type and base64 payload.
	CVDataURI string `json:"cvDataUri" validate:"required,startswith=data:"`
}

// ParseCV extracts structured profile data from an uploaded CV. Fields
// the parser could not find come back nil and must not overwrite
// existing profile values.
func (c Client) ParseCV(ctx context.Context, rq ParseCVRq) (profile.ParsedCV, error) {
	var res profile.ParsedCV
	if err := c.do(ctx, "/v1/flows/parse-cv", rq, &res); err != nil {
		return profile.ParsedCV{}, err
	}
	return res, nil
}

func (c Client) do(ctx context.Context, path string, rq, res interface{}) error {
	if err := c.validate.Struct(rq); err != nil {
		return errors.Wrap(ErrInvalidInput, err.Error())
	}
	reqData, err := json.Marshal(rq)
	if err != nil {
		return errors.Wrapf(err, "unable to marshal request for %s", path)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqData))
	if err != nil {
		return errors.Wrapf(err, "unable to build request for %s", path)
	}
	req.Header.Add("api-key", c.apiKey)
	req.Header.Add("content-type", "application/json")
	httpRes, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %s failed", path)
	}
	defer httpRes.Body.Close()
	if httpRes.StatusCode >= http.StatusBadRequest {
		errBody, err := ioutil.ReadAll(httpRes.Body)
		if err != nil {
			errBody = []byte(`unable to read body`)
		}
		return errors.New(fmt.Sprintf("got status code %d from %s: %s", httpRes.StatusCode, path, string(errBody)))
	}
	if err := json.NewDecoder(httpRes.Body).Decode(res); err != nil {
		return errors.Wrap(ErrInvalidOutput, err.Error())
	}
	if err := c.validate.Struct(res); err != nil {
		return errors.Wrap(ErrInvalidOutput, err.Error())
	}
	return nil
}
