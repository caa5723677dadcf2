package handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/snabb/sitemap"

	"github.com/career-compass-zm/job-board/internal/analytics"
	"github.com/career-compass-zm/job-board/internal/application"
	"github.com/career-compass-zm/job-board/internal/job"
	"github.com/career-compass-zm/job-board/internal/message"
	"github.com/career-compass-zm/job-board/internal/middleware"
	"github.com/career-compass-zm/job-board/internal/notification"
	"github.com/career-compass-zm/job-board/internal/profile"
	"github.com/career-compass-zm/job-board/internal/server"
	"github.com/career-compass-zm/job-board/internal/textgen"
)

var validate = validator.New()

func humanTime(t time.Time) string {
	return humanize.Time(t)
}

func IndexPageHandler(svr server.Server, jobStore *job.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// legacy links open the sign-in page this way
		if r.URL.Query().Get("action") == "login" {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		svr.RenderPageForJobs(w, r, jobStore, "jobs.html")
	}
}

// JobsRedirectHandler folds the old /jobs path into the index while
// keeping the filter query intact.
func JobsRedirectHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dst := "/"
		if r.URL.RawQuery != "" {
			dst = "/?" + r.URL.RawQuery
		}
		svr.Redirect(w, r, http.StatusMovedPermanently, dst)
	}
}

func JobBySlugPageHandler(svr server.Server, jobStore *job.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		slug := vars["slug"]
		jobPost, ok := jobStore.BySlug(slug)
		if !ok {
			// old links may carry the raw id
			jobPost, ok = jobStore.ByID(slug)
		}
		if !ok {
			svr.Render(w, http.StatusNotFound, "not-found.html", map[string]interface{}{
				"Slug": slug,
			})
			return
		}
		relevantJobs := relevantListings(jobStore, jobPost, 3)
		svr.Render(w, http.StatusOK, "job.html", map[string]interface{}{
			"Job":                jobPost,
			"JobURIEncoded":      url.QueryEscape(jobPost.Slug),
			"HTMLJobDescription": svr.MarkdownToHTML(jobPost.Description),
			"TimeAgo":            humanTime(jobPost.PostedDate),
			"RelevantJobs":       relevantJobs,
			"IsSignedOn":         middleware.IsSignedOn(r, svr.SessionStore, svr.GetJWTSigningKey()),
			"MonthAndYear":       jobPost.PostedDate.UTC().Format("January 2006"),
		})
	}
}

// relevantListings picks the freshest other listings still inside the
// recency window.
func relevantListings(jobStore *job.Store, current job.Listing, n int) []job.Listing {
	all := job.Filter(jobStore.List(), job.DefaultFilterState(), time.Now())
	out := make([]job.Listing, 0, n)
	for _, l := range all {
		if l.ID == current.ID {
			continue
		}
		l.TimeAgo = humanTime(l.PostedDate)
		out = append(out, l)
		if len(out) == n {
			break
		}
	}
	return out
}

func ApplyPageHandler(svr server.Server, jobStore *job.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		jobPost, ok := jobStore.BySlug(vars["slug"])
		if !ok {
			svr.Render(w, http.StatusNotFound, "not-found.html", map[string]interface{}{
				"Slug": vars["slug"],
			})
			return
		}
		svr.Render(w, http.StatusOK, "apply.html", map[string]interface{}{
			"Job": jobPost,
		})
	}
}

func SubmitApplicationHandler(svr server.Server, jobStore *job.Store, appStore *application.Store, notificationStore *notification.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		if err := r.ParseForm(); err != nil {
			svr.Log(err, "unable to parse application form")
			svr.TEXT(w, http.StatusBadRequest, "invalid form submission")
			return
		}
		vars := mux.Vars(r)
		jobPost, ok := jobStore.BySlug(vars["slug"])
		if !ok {
			svr.TEXT(w, http.StatusNotFound, "job not found")
			return
		}
		now := time.Now()
		appStore.Submit(profileJWT.UserID, jobPost.ID, jobPost.Title, jobPost.Company, r.Form.Get("cover_letter"), now)
		notificationStore.Add(
			profileJWT.UserID,
			fmt.Sprintf("Your application for %s at %s has been submitted.", jobPost.Title, jobPost.Company),
			notification.TypeApplication,
			now,
		)
		svr.Redirect(w, r, http.StatusSeeOther, "/dashboard")
	}
}

func PostAJobPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.Render(w, http.StatusOK, "post-a-job.html", map[string]interface{}{
			"Provinces": job.Provinces,
			"JobTypes":  job.Types,
		})
	}
}

func SubmitJobPostHandler(svr server.Server, jobStore *job.Store, notificationStore *notification.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svr.SeenSince(r, time.Minute) {
			svr.TEXT(w, http.StatusTooManyRequests, "please wait a minute before posting again")
			return
		}
		if err := r.ParseForm(); err != nil {
			svr.Log(err, "unable to parse job post form")
			svr.TEXT(w, http.StatusBadRequest, "invalid form submission")
			return
		}
		rq := listingRqFromForm(r.Form)
		if err := validate.Struct(rq); err != nil {
			svr.Render(w, http.StatusBadRequest, "post-a-job.html", map[string]interface{}{
				"Provinces": job.Provinces,
				"JobTypes":  job.Types,
				"Error":     "Please fill in all required fields. " + validationMessage(err),
				"Rq":        rq,
			})
			return
		}
		now := time.Now()
		listing := job.NewListing(rq, now)
		jobStore.Add(listing)
		// posting counters are stale now
		svr.CacheDelete(server.CacheKeyNewJobsLastWeek)
		svr.CacheDelete(server.CacheKeyNewJobsLastMonth)
		notificationStore.Add(
			"",
			fmt.Sprintf("New job posted: %s at %s.", listing.Title, listing.Company),
			notification.TypeGeneral,
			now,
		)
		svr.Redirect(w, r, http.StatusSeeOther, fmt.Sprintf("/job/%s", listing.Slug))
	}
}

func listingRqFromForm(form url.Values) *job.ListingRq {
	salaryMin, err := strconv.Atoi(form.Get("salary_min"))
	if err != nil {
		salaryMin = 0
	}
	salaryMax, err := strconv.Atoi(form.Get("salary_max"))
	if err != nil {
		salaryMax = 0
	}
	var tags []string
	for _, t := range strings.Split(form.Get("tags"), ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return &job.ListingRq{
		Title:              strings.TrimSpace(form.Get("title")),
		Company:            strings.TrimSpace(form.Get("company")),
		LogoURL:            strings.TrimSpace(form.Get("logo_url")),
		Province:           strings.TrimSpace(form.Get("province")),
		City:               strings.TrimSpace(form.Get("city")),
		SalaryMin:          salaryMin,
		SalaryMax:          salaryMax,
		Type:               strings.TrimSpace(form.Get("job_type")),
		Description:        strings.TrimSpace(form.Get("description")),
		Tags:               tags,
		Tasks:              form.Get("tasks"),
		TaskExamples:       form.Get("task_examples"),
		WhoWeAreLookingFor: form.Get("who_we_are_looking_for"),
		WillBeAPlus:        form.Get("will_be_a_plus"),
		WhatWeOffer:        form.Get("what_we_offer"),
	}
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ""
	}
	fields := make([]string, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, v.Field())
	}
	return "Invalid: " + strings.Join(fields, ", ")
}

func DashboardPageHandler(svr server.Server, appStore *application.Store, notificationStore *notification.Store, messageStore *message.Store, profileStore *profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		if profileJWT.IsRecruiter {
			recruiterJobs := appStore.RecruiterJobs()
			monthly := appStore.MonthlySeries()
			svr.Render(w, http.StatusOK, "dashboard-recruiter.html", map[string]interface{}{
				"FullName":      profileJWT.FullName,
				"RecruiterJobs": recruiterJobs,
				"Monthly":       monthly,
				"Summary":       analytics.SummariseRecruiterJobs(recruiterJobs),
				"Trend":         analytics.TrendFromSeries(monthly),
			})
			return
		}
		userProfile, _ := profileStore.ByUserID(profileJWT.UserID)
		svr.Render(w, http.StatusOK, "dashboard-seeker.html", map[string]interface{}{
			"FullName":           profileJWT.FullName,
			"Applications":       appStore.ListForUser(profileJWT.UserID),
			"UnreadCount":        notificationStore.UnreadCount(profileJWT.UserID),
			"UnreadMessageCount": messageStore.UnreadCount(),
			"Profile":            userProfile,
		})
	}
}

// UpdateApplicationStatusHandler moves an application through its
// one-way lifecycle. Recruiter only; invalid transitions are rejected.
func UpdateApplicationStatusHandler(svr server.Server, appStore *application.Store, notificationStore *notification.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"status": "invalid request"})
			return
		}
		vars := mux.Vars(r)
		to := application.Status(r.Form.Get("status"))
		if err := appStore.UpdateStatus(vars["id"], to); err != nil {
			svr.JSON(w, http.StatusConflict, map[string]string{"status": err.Error()})
			return
		}
		notificationType := notification.TypeApplication
		switch to {
		case application.StatusShortlisted:
			notificationType = notification.TypeShortlist
		case application.StatusRejected:
			notificationType = notification.TypeRejection
		}
		notificationStore.Add("", fmt.Sprintf("An application has moved to %s.", to), notificationType, time.Now())
		svr.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func NotificationsPageHandler(svr server.Server, notificationStore *notification.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		svr.Render(w, http.StatusOK, "notifications.html", map[string]interface{}{
			"Notifications": notificationStore.ListForUser(profileJWT.UserID),
			"UnreadCount":   notificationStore.UnreadCount(profileJWT.UserID),
		})
	}
}

func MarkNotificationReadHandler(svr server.Server, notificationStore *notification.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if !notificationStore.MarkAsRead(vars["id"]) {
			svr.JSON(w, http.StatusNotFound, map[string]string{"status": "not found"})
			return
		}
		svr.Redirect(w, r, http.StatusSeeOther, "/notifications")
	}
}

func DeleteNotificationHandler(svr server.Server, notificationStore *notification.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		if !notificationStore.Delete(vars["id"]) {
			svr.JSON(w, http.StatusNotFound, map[string]string{"status": "not found"})
			return
		}
		svr.Redirect(w, r, http.StatusSeeOther, "/notifications")
	}
}

func MessagesPageHandler(svr server.Server, messageStore *message.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.Render(w, http.StatusOK, "messages.html", map[string]interface{}{
			"Conversations": messageStore.List(),
			"UnreadCount":   messageStore.UnreadCount(),
		})
	}
}

func ConversationPageHandler(svr server.Server, messageStore *message.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		vars := mux.Vars(r)
		convo, ok := messageStore.ByID(vars["id"])
		if !ok {
			svr.Render(w, http.StatusNotFound, "not-found.html", map[string]interface{}{})
			return
		}
		// opening a thread reads it
		messageStore.MarkRead(convo.ID)
		svr.Render(w, http.StatusOK, "conversation.html", map[string]interface{}{
			"Conversation": convo,
			"UserID":       profileJWT.UserID,
		})
	}
}

func SendMessageHandler(svr server.Server, messageStore *message.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form submission")
			return
		}
		text := strings.TrimSpace(r.Form.Get("text"))
		vars := mux.Vars(r)
		if text != "" {
			if _, ok := messageStore.Send(vars["id"], profileJWT.UserID, text, time.Now()); !ok {
				svr.TEXT(w, http.StatusNotFound, "conversation not found")
				return
			}
		}
		svr.Redirect(w, r, http.StatusSeeOther, fmt.Sprintf("/messages/%s", vars["id"]))
	}
}

func ProfilePageHandler(svr server.Server, profileStore *profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		userProfile, ok := profileStore.ByUserID(profileJWT.UserID)
		if !ok {
			userProfile = profile.Profile{FullName: profileJWT.FullName, Email: profileJWT.Email}
		}
		svr.Render(w, http.StatusOK, "profile.html", map[string]interface{}{
			"Profile": userProfile,
		})
	}
}

func SaveProfileHandler(svr server.Server, profileStore *profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form submission")
			return
		}
		userProfile, _ := profileStore.ByUserID(profileJWT.UserID)
		userProfile.FullName = strings.TrimSpace(r.Form.Get("full_name"))
		userProfile.Email = strings.TrimSpace(r.Form.Get("email"))
		userProfile.Phone = strings.TrimSpace(r.Form.Get("phone"))
		userProfile.Address = strings.TrimSpace(r.Form.Get("address"))
		userProfile.NationalID = strings.TrimSpace(r.Form.Get("national_id"))
		userProfile.Portfolio = strings.TrimSpace(r.Form.Get("portfolio"))
		userProfile.Summary = strings.TrimSpace(r.Form.Get("summary"))
		var skills []string
		for _, s := range strings.Split(r.Form.Get("skills"), ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				skills = append(skills, s)
			}
		}
		userProfile.Skills = skills
		if err := validate.Struct(userProfile); err != nil {
			svr.Render(w, http.StatusBadRequest, "profile.html", map[string]interface{}{
				"Profile": userProfile,
				"Error":   "Please check your details. " + validationMessage(err),
			})
			return
		}
		profileStore.Save(profileJWT.UserID, userProfile)
		svr.Redirect(w, r, http.StatusSeeOther, "/profile")
	}
}

// SummarizeProfileHandler asks the text generation service for a short
// professional summary and stores it on the profile.
func SummarizeProfileHandler(svr server.Server, profileStore *profile.Store, textGen textgen.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusUnauthorized, map[string]string{"status": "unauthorised"})
			return
		}
		userProfile, ok := profileStore.ByUserID(profileJWT.UserID)
		if !ok {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"status": "complete your profile first"})
			return
		}
		res, err := textGen.SummarizeProfile(r.Context(), textgen.SummarizeProfileRq{ProfileText: userProfile.ProfileText()})
		if err != nil {
			textGenError(svr, w, err, "unable to summarise profile")
			return
		}
		userProfile.Summary = res.Summary
		profileStore.Save(profileJWT.UserID, userProfile)
		svr.JSON(w, http.StatusOK, map[string]string{"summary": res.Summary})
	}
}

// ParseCVHandler accepts an uploaded CV, sends it for extraction and
// merges the result into the stored profile. Fields the parser could
// not find keep their existing values.
func ParseCVHandler(svr server.Server, profileStore *profile.Store, textGen textgen.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/auth")
			return
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid upload")
			return
		}
		file, header, err := r.FormFile("cv")
		if err != nil {
			svr.TEXT(w, http.StatusBadRequest, "missing cv file")
			return
		}
		defer file.Close()
		raw, err := ioutil.ReadAll(file)
		if err != nil {
			svr.Log(err, "unable to read uploaded cv")
			svr.TEXT(w, http.StatusInternalServerError, "unable to read upload")
			return
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw))
		parsed, err := textGen.ParseCV(r.Context(), textgen.ParseCVRq{CVDataURI: dataURI})
		if err != nil {
			textGenError(svr, w, err, "unable to parse cv")
			return
		}
		profileStore.ApplyCV(profileJWT.UserID, parsed)
		svr.Redirect(w, r, http.StatusSeeOther, "/profile")
	}
}

func SuggestSkillTagsHandler(svr server.Server, textGen textgen.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"status": "invalid request"})
			return
		}
		res, err := textGen.SuggestSkillTags(r.Context(), textgen.SuggestSkillTagsRq{
			JobDescription: r.Form.Get("description"),
		})
		if err != nil {
			textGenError(svr, w, err, "unable to suggest skill tags")
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}

func GenerateCoverLetterHandler(svr server.Server, jobStore *job.Store, profileStore *profile.Store, textGen textgen.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileJWT, err := middleware.GetUserFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusUnauthorized, map[string]string{"status": "unauthorised"})
			return
		}
		vars := mux.Vars(r)
		jobPost, ok := jobStore.BySlug(vars["slug"])
		if !ok {
			svr.JSON(w, http.StatusNotFound, map[string]string{"status": "job not found"})
			return
		}
		userProfile, ok := profileStore.ByUserID(profileJWT.UserID)
		if !ok {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"status": "complete your profile first"})
			return
		}
		jobDetails := fmt.Sprintf("%s at %s, %s. %s", jobPost.Title, jobPost.Company, jobPost.Location, jobPost.Description)
		res, err := textGen.GenerateCoverLetter(r.Context(), textgen.GenerateCoverLetterRq{
			JobDetails:  jobDetails,
			UserProfile: userProfile.ProfileText(),
		})
		if err != nil {
			textGenError(svr, w, err, "unable to generate cover letter")
			return
		}
		svr.JSON(w, http.StatusOK, res)
	}
}

func textGenError(svr server.Server, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, textgen.ErrInvalidInput):
		svr.JSON(w, http.StatusBadRequest, map[string]string{"status": "invalid input"})
	case errors.Is(err, textgen.ErrInvalidOutput):
		svr.Log(err, msg)
		svr.JSON(w, http.StatusBadGateway, map[string]string{"status": "bad response from generator"})
	default:
		svr.Log(err, msg)
		svr.JSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
	}
}

func ServeRSSFeed(svr server.Server, jobStore *job.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings := job.Filter(jobStore.List(), job.DefaultFilterState(), time.Now())
		if len(listings) > 20 {
			listings = listings[:20]
		}
		now := time.Now()
		siteURL := svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost
		feed := &feeds.Feed{
			Title:       fmt.Sprintf("%s Jobs", svr.GetConfig().SiteName),
			Link:        &feeds.Link{Href: siteURL},
			Description: fmt.Sprintf("%s Jobs", svr.GetConfig().SiteName),
			Author:      &feeds.Author{Name: svr.GetConfig().SiteName, Email: svr.GetConfig().SupportEmail},
			Created:     now,
		}
		for _, j := range listings {
			feed.Items = append(feed.Items, &feeds.Item{
				Title:       fmt.Sprintf("%s with %s - %s", j.Title, j.Company, j.Location),
				Link:        &feeds.Link{Href: fmt.Sprintf("%s/job/%s", siteURL, j.Slug)},
				Description: string(svr.MarkdownToHTML(j.Description + "\n\n**Salary:** " + j.Salary)),
				Author:      &feeds.Author{Name: svr.GetConfig().SiteName, Email: svr.GetConfig().SupportEmail},
				Created:     j.PostedDate,
			})
		}
		rssFeed, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to convert rss feed to xml")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		svr.XML(w, http.StatusOK, []byte(rssFeed))
	}
}

func SitemapHandler(svr server.Server, jobStore *job.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		siteURL := svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost
		now := time.Now()
		sitemapFile := sitemap.New()
		for _, loc := range []string{"", "/jobs", "/post-a-job", "/auth"} {
			sitemapFile.Add(&sitemap.URL{
				Loc:        siteURL + loc,
				LastMod:    &now,
				ChangeFreq: sitemap.Daily,
			})
		}
		for _, j := range jobStore.List() {
			lastMod := j.PostedDate
			sitemapFile.Add(&sitemap.URL{
				Loc:        fmt.Sprintf("%s/job/%s", siteURL, j.Slug),
				LastMod:    &lastMod,
				ChangeFreq: sitemap.Weekly,
			})
		}
		buf := new(bytes.Buffer)
		if _, err := sitemapFile.WriteTo(buf); err != nil {
			svr.Log(err, "sitemapFile.WriteTo")
			svr.TEXT(w, http.StatusInternalServerError, "unable to write sitemap file")
			return
		}
		svr.XML(w, http.StatusOK, buf.Bytes())
	}
}

func RobotsTxtHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		siteURL := svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost
		svr.TEXT(w, http.StatusOK, fmt.Sprintf("User-agent: *\nDisallow: /dashboard\nDisallow: /profile\nDisallow: /messages\nDisallow: /notifications\n\nSitemap: %s/sitemap.xml\n", siteURL))
	}
}

func DisableDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
