package textgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const testJobDescription = "We are seeking a Registered Nurse to provide patient care in our surgical ward."

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	client, err := NewClient("test-key", srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv.Close
}

func TestSuggestSkillTags(t *testing.T) {
	var gotPath, gotKey string
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		var rq SuggestSkillTagsRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(SuggestSkillTagsRes{SuggestedSkills: []string{"Nursing", "Patient Care"}})
	})
	defer done()

	res, err := client.SuggestSkillTags(context.Background(), SuggestSkillTagsRq{JobDescription: testJobDescription})
	if err != nil {
		t.Fatalf("SuggestSkillTags: %v", err)
	}
	if len(res.SuggestedSkills) != 2 || res.SuggestedSkills[0] != "Nursing" {
		t.Errorf("skills = %v", res.SuggestedSkills)
	}
	if gotPath != "/v1/flows/suggest-skill-tags" {
		t.Errorf("path = %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api-key header = %q", gotKey)
	}
}

func TestSuggestSkillTags_InvalidInput(t *testing.T) {
	called := false
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer done()

	_, err := client.SuggestSkillTags(context.Background(), SuggestSkillTagsRq{JobDescription: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if called {
		t.Error("invalid input must not reach the service")
	}
}

func TestGenerateCoverLetter_InvalidOutput(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateCoverLetterRes{CoverLetter: "too short"})
	})
	defer done()

	_, err := client.GenerateCoverLetter(context.Background(), GenerateCoverLetterRq{
		JobDetails:  "Registered Nurse at Ndola Central Hospital, surgical ward.",
		UserProfile: "Five years of nursing experience across two hospitals.",
	})
	if !errors.Is(err, ErrInvalidOutput) {
		t.Errorf("err = %v, want ErrInvalidOutput", err)
	}
}

func TestSummarizeProfile_UpstreamError(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	})
	defer done()

	_, err := client.SummarizeProfile(context.Background(), SummarizeProfileRq{
		ProfileText: "John Doe, registered nurse with surgical ward experience.",
	})
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error should carry status code: %v", err)
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidOutput) {
		t.Errorf("upstream failure misclassified: %v", err)
	}
}

func TestParseCV(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var rq ParseCVRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.HasPrefix(rq.CVDataURI, "data:application/pdf;base64,") {
			t.Errorf("cvDataUri = %q", rq.CVDataURI)
		}
		w.Write([]byte(`{"fullName":"Grace Mwila","skills":["Accounting"]}`))
	})
	defer done()

	got, err := client.ParseCV(context.Background(), ParseCVRq{CVDataURI: "data:application/pdf;base64,Zm9v"})
	if err != nil {
		t.Fatalf("ParseCV: %v", err)
	}
	if got.FullName == nil || *got.FullName != "Grace Mwila" {
		t.Errorf("fullName = %v", got.FullName)
	}
	if got.Email != nil {
		t.Error("absent email should stay nil")
	}
}

func TestParseCV_RejectsNonDataURI(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	defer done()

	_, err := client.ParseCV(context.Background(), ParseCVRq{CVDataURI: "https://example.com/cv.pdf"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
