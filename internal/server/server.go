package server

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	stdtemplate "html/template"

	"github.com/allegro/bigcache/v3"
	"github.com/dustin/go-humanize"
	"github.com/getsentry/raven-go"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/career-compass-zm/job-board/internal/config"
	"github.com/career-compass-zm/job-board/internal/job"
	"github.com/career-compass-zm/job-board/internal/middleware"
	"github.com/career-compass-zm/job-board/internal/template"
)

const (
	CacheKeyNewJobsLastWeek  = "newJobsLastWeek"
	CacheKeyNewJobsLastMonth = "newJobsLastMonth"
)

type Server struct {
	cfg          config.Config
	router       *mux.Router
	tmpl         *template.Template
	SessionStore *sessions.CookieStore
	bigCache     *bigcache.BigCache
	emailRe      *regexp.Regexp
}

func NewServer(
	cfg config.Config,
	r *mux.Router,
	t *template.Template,
	sessionStore *sessions.CookieStore,
) Server {
	raven.SetDSN(cfg.SentryDSN)

	bigCache, err := bigcache.NewBigCache(bigcache.DefaultConfig(12 * time.Hour))
	svr := Server{
		cfg:          cfg,
		router:       r,
		tmpl:         t,
		SessionStore: sessionStore,
		bigCache:     bigCache,
		emailRe:      regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$"),
	}
	if err != nil {
		svr.Log(err, "unable to initialise big cache")
	}

	return svr
}

func (s Server) RegisterRoute(path string, handler func(w http.ResponseWriter, r *http.Request), methods []string) {
	s.router.HandleFunc(path, handler).Methods(methods...)
}

func (s Server) RegisterPathPrefix(path string, handler http.Handler, methods []string) {
	s.router.PathPrefix(path).Handler(handler).Methods(methods...)
}

func (s Server) StringToHTML(str string) stdtemplate.HTML {
	return s.tmpl.StringToHTML(str)
}

func (s Server) JSEscapeString(str string) string {
	return s.tmpl.JSEscapeString(str)
}

func (s Server) MarkdownToHTML(str string) stdtemplate.HTML {
	return s.tmpl.MarkdownToHTML(str)
}

func (s Server) GetConfig() config.Config {
	return s.cfg
}

// RenderPageForJobs runs the full listings pipeline for the given
// request: parse filters, drop stale listings, filter, paginate and
// render. Changing any filter resets pagination because the encoded
// filter query never carries the page parameter.
func (s Server) RenderPageForJobs(w http.ResponseWriter, r *http.Request, jobStore *job.Store, htmlView string) {
	now := time.Now()
	filterState := job.ParseFilterState(r.URL.Query())

	var newJobsLastWeek, newJobsLastMonth int
	newJobsLastWeekCached, okWeek := s.CacheGet(CacheKeyNewJobsLastWeek)
	newJobsLastMonthCached, okMonth := s.CacheGet(CacheKeyNewJobsLastMonth)
	if !okMonth || !okWeek {
		// load and cache last jobs count
		newJobsLastWeek, newJobsLastMonth = jobStore.NewLastWeekOrMonth(now)
		buf := &bytes.Buffer{}
		enc := gob.NewEncoder(buf)
		if err := enc.Encode(newJobsLastWeek); err != nil {
			s.Log(err, "unable to encode new jobs last week")
		}
		if err := s.CacheSet(CacheKeyNewJobsLastWeek, buf.Bytes()); err != nil {
			s.Log(err, "unable to cache set new jobs last week")
		}
		buf.Reset()
		if err := enc.Encode(newJobsLastMonth); err != nil {
			s.Log(err, "unable to encode new jobs last month")
		}
		if err := s.CacheSet(CacheKeyNewJobsLastMonth, buf.Bytes()); err != nil {
			s.Log(err, "unable to cache set new jobs last month")
		}
	} else {
		dec := gob.NewDecoder(bytes.NewReader(newJobsLastWeekCached))
		if err := dec.Decode(&newJobsLastWeek); err != nil {
			s.Log(err, "unable to decode cached new jobs last week")
		}
		dec = gob.NewDecoder(bytes.NewReader(newJobsLastMonthCached))
		if err := dec.Decode(&newJobsLastMonth); err != nil {
			s.Log(err, "unable to decode cached new jobs last month")
		}
	}

	filtered := job.Filter(jobStore.List(), filterState, now)
	jobsForPage, currentPage, totalPages := job.Paginate(filtered, filterState.Page, s.cfg.JobsPerPage)
	for i := range jobsForPage {
		jobsForPage[i].TimeAgo = humanize.Time(jobsForPage[i].PostedDate)
	}

	jobTypeFilters := make([]string, 0, len(filterState.JobTypes))
	for _, t := range job.Types {
		if _, ok := filterState.JobTypes[t]; ok {
			jobTypeFilters = append(jobTypeFilters, t)
		}
	}

	s.Render(w, http.StatusOK, htmlView, map[string]interface{}{
		"Jobs":             jobsForPage,
		"KeywordFilter":    filterState.Keyword,
		"ProvinceFilter":   filterState.Province,
		"CityFilter":       filterState.City,
		"SalaryMinFilter":  filterState.SalaryMin,
		"SalaryMaxFilter":  filterState.SalaryMax,
		"SalaryCeiling":    job.SalaryCeiling,
		"JobTypeFilters":   jobTypeFilters,
		"FilterQuery":      filterState.Encode().Encode(),
		"CurrentPage":      currentPage,
		"TotalPages":       totalPages,
		"PageIndexes":      job.PageNumbers(currentPage, totalPages),
		"PageEllipsis":     job.PageEllipsis,
		"PageSize":         s.cfg.JobsPerPage,
		"TotalJobCount":    len(filtered),
		"TextJobCount":     textifyJobCount(len(filtered)),
		"TextJobTitles":    textifyJobTitles(jobsForPage),
		"TextCompanies":    textifyCompanies(jobsForPage),
		"Provinces":        job.Provinces,
		"JobTypes":         job.Types,
		"NewJobsLastWeek":  newJobsLastWeek,
		"NewJobsLastMonth": newJobsLastMonth,
		"MonthAndYear":     now.UTC().Format("January 2006"),
	})
}

func textifyJobCount(n int) string {
	if n <= 50 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d+", (n/50)*50)
}

func textifyCompanies(jobs []job.Listing) string {
	switch {
	case len(jobs) == 1:
		return jobs[0].Company
	case len(jobs) == 2:
		return fmt.Sprintf("%s and %s", jobs[0].Company, jobs[1].Company)
	case len(jobs) > 2:
		return fmt.Sprintf("%s, %s and %s", jobs[0].Company, jobs[1].Company, jobs[2].Company)
	}

	return ""
}

func textifyJobTitles(jobs []job.Listing) string {
	switch {
	case len(jobs) == 1:
		return jobs[0].Title
	case len(jobs) == 2:
		return fmt.Sprintf("%s and %s", jobs[0].Title, jobs[1].Title)
	case len(jobs) > 2:
		return fmt.Sprintf("%s, %s and %s", jobs[0].Title, jobs[1].Title, jobs[2].Title)
	}

	return ""
}

func (s Server) Render(w http.ResponseWriter, status int, htmlView string, data interface{}) error {
	dataMap := make(map[string]interface{}, 0)
	if data != nil {
		dataMap = data.(map[string]interface{})
	}
	dataMap["SiteName"] = s.GetConfig().SiteName
	dataMap["SupportEmail"] = s.GetConfig().SupportEmail
	dataMap["SiteHost"] = s.GetConfig().SiteHost

	return s.tmpl.Render(w, status, htmlView, dataMap)
}

func (s Server) XML(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	w.Write(data)
}

func (s Server) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (s Server) TEXT(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func (s Server) MEDIA(w http.ResponseWriter, status int, media []byte, mediaType string) {
	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Cache-Control", "max-age=31536000")
	w.WriteHeader(status)
	w.Write(media)
}

func (s Server) Log(err error, msg string) {
	raven.CaptureErrorAndWait(err, map[string]string{"ctx": msg})
	log.Printf("%s: %+v", msg, err)
}

func (s Server) Redirect(w http.ResponseWriter, r *http.Request, status int, dst string) {
	http.Redirect(w, r, dst, status)
}

func (s Server) Run() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	if s.cfg.Env == "dev" {
		log.Printf("local env http://localhost:%s", s.cfg.Port)
		addr = fmt.Sprintf("localhost:%s", s.cfg.Port)
	}
	return http.ListenAndServe(
		addr,
		middleware.HTTPSMiddleware(
			middleware.GzipMiddleware(
				middleware.LoggingMiddleware(middleware.HeadersMiddleware(s.router, s.cfg.Env)),
			),
			s.cfg.Env,
		),
	)
}

func (s Server) GetJWTSigningKey() []byte {
	return s.cfg.JwtSigningKey
}

func (s Server) CacheGet(key string) ([]byte, bool) {
	out, err := s.bigCache.Get(key)
	if err != nil {
		return []byte{}, false
	}
	return out, true
}

func (s Server) CacheSet(key string, val []byte) error {
	return s.bigCache.Set(key, val)
}

func (s Server) CacheDelete(key string) error {
	return s.bigCache.Delete(key)
}

// SeenSince rate-limits repeat submissions by forwarded IP.
func (s Server) SeenSince(r *http.Request, timeAgo time.Duration) bool {
	ipAddrs := strings.Split(r.Header.Get("x-forwarded-for"), ", ")
	if len(ipAddrs) == 0 {
		return false
	}
	lastSeen, err := s.bigCache.Get(ipAddrs[0])
	if err == bigcache.ErrEntryNotFound {
		s.bigCache.Set(ipAddrs[0], []byte(time.Now().Format(time.RFC3339)))
		return false
	}
	if err != nil {
		return false
	}
	lastSeenTime, err := time.Parse(time.RFC3339, string(lastSeen))
	if err != nil {
		s.bigCache.Set(ipAddrs[0], []byte(time.Now().Format(time.RFC3339)))
		return false
	}
	if !lastSeenTime.After(time.Now().Add(-timeAgo)) {
		s.bigCache.Set(ipAddrs[0], []byte(time.Now().Format(time.RFC3339)))
		return false
	}

	return true
}

func (s Server) IsEmail(val string) bool {
	return s.emailRe.MatchString(val)
}
