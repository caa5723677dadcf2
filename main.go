package main

import (
	"embed"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/career-compass-zm/job-board/internal/application"
	"github.com/career-compass-zm/job-board/internal/authoriser"
	"github.com/career-compass-zm/job-board/internal/config"
	"github.com/career-compass-zm/job-board/internal/handler"
	"github.com/career-compass-zm/job-board/internal/job"
	"github.com/career-compass-zm/job-board/internal/message"
	"github.com/career-compass-zm/job-board/internal/middleware"
	"github.com/career-compass-zm/job-board/internal/notification"
	"github.com/career-compass-zm/job-board/internal/profile"
	"github.com/career-compass-zm/job-board/internal/server"
	"github.com/career-compass-zm/job-board/internal/template"
	"github.com/career-compass-zm/job-board/internal/textgen"
	"github.com/career-compass-zm/job-board/internal/user"
)

//go:embed static/views
var staticFS embed.FS

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	textGen, err := textgen.NewClient(cfg.TextGenAPIKey, cfg.TextGenBaseURL)
	if err != nil {
		log.Fatalf("unable to set up text generation client: %v", err)
	}
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)

	now := time.Now()
	jobStore := job.NewStore(job.Seed(now))
	notificationStore := notification.NewStore(notification.Seed(now))
	messageStore := message.NewStore(message.Seed(now))
	appStore := application.NewStore(application.Seed(now))
	profileStore := profile.NewStore()
	userRepo := user.NewRepository()
	auth := authoriser.NewAuthoriser(userRepo)

	svr := server.NewServer(
		cfg,
		mux.NewRouter(),
		template.NewTemplate(staticFS),
		sessionStore,
	)

	svr.RegisterPathPrefix("/s/", handler.DisableDirListing(http.StripPrefix("/s/", http.FileServer(http.Dir("./static/assets")))), []string{"GET"})

	svr.RegisterRoute("/sitemap.xml", handler.SitemapHandler(svr, jobStore), []string{"GET"})
	svr.RegisterRoute("/rss", handler.ServeRSSFeed(svr, jobStore), []string{"GET"})
	svr.RegisterRoute("/robots.txt", handler.RobotsTxtHandler(svr), []string{"GET"})

	svr.RegisterRoute("/", handler.IndexPageHandler(svr, jobStore), []string{"GET"})
	svr.RegisterRoute("/jobs", handler.JobsRedirectHandler(svr), []string{"GET"})

	// view job by slug
	svr.RegisterRoute("/job/{slug}", handler.JobBySlugPageHandler(svr, jobStore), []string{"GET"})

	// apply for job
	svr.RegisterRoute("/job/{slug}/apply", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.ApplyPageHandler(svr, jobStore)), []string{"GET"})
	svr.RegisterRoute("/job/{slug}/apply", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.SubmitApplicationHandler(svr, jobStore, appStore, notificationStore)), []string{"POST"})

	// generate a cover letter draft for a job
	svr.RegisterRoute("/x/job/{slug}/cover-letter", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.GenerateCoverLetterHandler(svr, jobStore, profileStore, textGen)), []string{"POST"})

	// post a job
	svr.RegisterRoute("/post-a-job", handler.PostAJobPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/x/s", handler.SubmitJobPostHandler(svr, jobStore, notificationStore), []string{"POST"})

	// suggest skill tags for a job description
	svr.RegisterRoute("/x/skills/suggest", handler.SuggestSkillTagsHandler(svr, textGen), []string{"POST"})

	//
	// auth routes
	//

	svr.RegisterRoute("/auth", handler.GetAuthPageHandler(svr), []string{"GET"})
	svr.RegisterRoute("/x/auth/signup", handler.SignUpHandler(svr, auth), []string{"POST"})
	svr.RegisterRoute("/x/auth/signin", handler.SignInHandler(svr, auth), []string{"POST"})
	svr.RegisterRoute("/x/auth/signout", handler.SignOutHandler(svr), []string{"GET"})

	//
	// signed-on routes
	//

	svr.RegisterRoute("/dashboard", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.DashboardPageHandler(svr, appStore, notificationStore, messageStore, profileStore)), []string{"GET"})

	svr.RegisterRoute("/x/applications/{id}/status", middleware.RecruiterAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.UpdateApplicationStatusHandler(svr, appStore, notificationStore)), []string{"POST"})

	svr.RegisterRoute("/notifications", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.NotificationsPageHandler(svr, notificationStore)), []string{"GET"})
	svr.RegisterRoute("/x/notifications/{id}/read", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.MarkNotificationReadHandler(svr, notificationStore)), []string{"POST"})
	svr.RegisterRoute("/x/notifications/{id}/delete", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.DeleteNotificationHandler(svr, notificationStore)), []string{"POST"})

	svr.RegisterRoute("/messages", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.MessagesPageHandler(svr, messageStore)), []string{"GET"})
	svr.RegisterRoute("/messages/{id}", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.ConversationPageHandler(svr, messageStore)), []string{"GET"})
	svr.RegisterRoute("/x/messages/{id}/send", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.SendMessageHandler(svr, messageStore)), []string{"POST"})

	svr.RegisterRoute("/profile", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.ProfilePageHandler(svr, profileStore)), []string{"GET"})
	svr.RegisterRoute("/x/profile/save", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.SaveProfileHandler(svr, profileStore)), []string{"POST"})
	svr.RegisterRoute("/x/profile/summarise", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.SummarizeProfileHandler(svr, profileStore, textGen)), []string{"POST"})
	svr.RegisterRoute("/x/profile/cv", middleware.UserAuthenticatedMiddleware(sessionStore, cfg.JwtSigningKey, handler.ParseCVHandler(svr, profileStore, textGen)), []string{"POST"})

	log.Fatal(svr.Run())
}
