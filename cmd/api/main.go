package main

import (
	"os"

	"github.com/Aman1684/medskillx/internal/config"
	"github.com/Aman1684/medskillx/internal/delivery/http"
	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/Aman1684/medskillx/internal/logger"
	"github.com/Aman1684/medskillx/internal/repository/jsonstore"
	"github.com/Aman1684/medskillx/internal/security"
	"github.com/Aman1684/medskillx/internal/service"

	httpNet "net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()
	logger.InitLogger(cfg.LogLevel)

	// 2. Store (arquivos JSON) e diretórios de upload/certificados
	store, err := jsonstore.NewStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("Cannot initialize data dir:", err)
	}
	for _, dir := range []string{cfg.UploadsDir, cfg.CertificatesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("Cannot create directory:", err)
		}
	}

	// 3. Layers Init
	svc := service.NewService(store, cfg)
	audit := security.NewAuditLogger()
	h := http.NewHandler(svc, store, cfg, audit)
	limiter := security.NewRateLimiter()

	// 4. Router (ServeMux com method patterns)
	mux := httpNet.NewServeMux()

	protect := func(handler httpNet.HandlerFunc) httpNet.HandlerFunc {
		return http.AuthMiddleware(cfg.JWTSecret, handler)
	}
	recruiterOnly := http.RequireRoles(domain.RoleRecruiter)
	seekerOnly := http.RequireRoles(domain.RoleJobSeeker)
	limited := func(endpoint string, handler httpNet.HandlerFunc) httpNet.HandlerFunc {
		return security.RateLimitMiddleware(limiter, endpoint)(handler)
	}

	// Auth
	mux.HandleFunc("POST /api/auth/register", limited("register", h.Register))
	mux.HandleFunc("POST /api/auth/login", limited("login", h.Login))

	// Conteúdo público
	mux.HandleFunc("GET /api/questions", h.GetQuestions)
	mux.HandleFunc("GET /api/data/testimonials", h.GetTestimonials)
	mux.HandleFunc("GET /api/data/feature-cards", h.GetFeatureCards)
	mux.HandleFunc("GET /api/data/impact-metrics", h.GetImpactMetrics)
	mux.HandleFunc("GET /api/leaderboard", h.GetLeaderboard)
	mux.HandleFunc("POST /api/newsletter/subscribe", limited("newsletter", h.SubscribeNewsletter))

	// TrainX
	mux.HandleFunc("GET /api/trainx/courses", h.GetCourses)
	mux.HandleFunc("GET /api/trainx/progress/{userId}", protect(h.GetProgress))
	mux.HandleFunc("POST /api/trainx/progress/{userId}", protect(h.SaveProgress))

	// Users
	mux.HandleFunc("GET /api/users/{userId}", protect(h.GetUser))
	mux.HandleFunc("PUT /api/users/{userId}", protect(h.UpdateUser))
	mux.HandleFunc("PUT /api/users/{userId}/assessx-scores", protect(h.SaveAssessxScore))
	mux.HandleFunc("PUT /api/users/{userId}/promote-to-recruiter", protect(h.PromoteToRecruiter))
	mux.HandleFunc("GET /api/users/{userId}/applications", protect(seekerOnly(h.GetUserApplications)))
	mux.HandleFunc("GET /api/users/{userId}/posted-jobs", protect(recruiterOnly(h.GetPostedJobs)))

	// HireX
	mux.HandleFunc("GET /api/jobs", h.GetJobs)
	mux.HandleFunc("POST /api/jobs", protect(recruiterOnly(h.CreateJob)))
	mux.HandleFunc("GET /api/jobs/recruiter/{userId}", protect(recruiterOnly(h.GetRecruiterJobs)))
	mux.HandleFunc("GET /api/jobs/{jobId}/{sub}", protect(h.JobSubresource))
	mux.HandleFunc("POST /api/applications/submit", protect(seekerOnly(h.SubmitApplication)))
	mux.HandleFunc("GET /api/applications/{applicationId}", protect(recruiterOnly(h.GetApplication)))
	mux.HandleFunc("PUT /api/applications/{applicationId}/status", protect(recruiterOnly(h.UpdateApplicationStatus)))

	// Certificados
	mux.HandleFunc("GET /api/certificate/download/{userId}/{courseTitle}", protect(h.DownloadCertificate))

	// Estáticos e observabilidade
	mux.Handle("GET /uploads/", httpNet.StripPrefix("/uploads/", httpNet.FileServer(httpNet.Dir(cfg.UploadsDir))))
	mux.Handle("GET /certificates/", httpNet.StripPrefix("/certificates/", httpNet.FileServer(httpNet.Dir(cfg.CertificatesDir))))
	mux.Handle("GET /metrics", promhttp.Handler())

	// 5. Limpeza diária de uploads órfãos
	cleanup := service.NewCleanupService(store, cfg.UploadsDir, cfg.CleanupHour)
	cleanup.Start()
	defer cleanup.Stop()

	server := http.CORSMiddleware(cfg.CORSOrigin, http.RecoverMiddleware(http.MetricsMiddleware(mux)))
	logger.Info("Server running on port %s", cfg.Port)
	logger.Fatal(httpNet.ListenAndServe(":"+cfg.Port, server))
}
