package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/Aman1684/medskillx/internal/service"
)

func (h *Handler) GetJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	score, _ := strconv.Atoi(q.Get("score")) // Ausente ou inválido conta como 0

	jobs, err := h.Service.ListJobs(score, q.Get("location"), q.Get("salary"), q.Get("workType"))
	if err != nil {
		h.Fail(w, r, err, "Unable to retrieve jobs data.")
		return
	}
	h.JSON(w, 200, jobs)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title               string                  `json:"title"`
		Description         string                  `json:"description"`
		Company             string                  `json:"company"`
		Location            string                  `json:"location"`
		Salary              string                  `json:"salary"`
		Type                string                  `json:"type"`
		WorkTypes           []string                `json:"workTypes"`
		Experience          string                  `json:"experience"`
		RequiredScore       any                     `json:"requiredScore"`
		Qualifications      string                  `json:"qualifications"`
		ApplicationDeadline string                  `json:"applicationDeadline"`
		ContactEmail        string                  `json:"contactEmail"`
		Skills              []string                `json:"skills"`
		CustomQuestions     []domain.CustomQuestion `json:"customQuestions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, 400, "Invalid JSON format in request body.")
		return
	}

	employerID, _, _ := claims(r)
	job, err := h.Service.CreateJob(domain.Job{
		Title:               req.Title,
		Description:         req.Description,
		Company:             req.Company,
		Location:            req.Location,
		Salary:              req.Salary,
		Type:                req.Type,
		WorkTypes:           req.WorkTypes,
		Experience:          req.Experience,
		RequiredScore:       coerceInt(req.RequiredScore),
		Qualifications:      req.Qualifications,
		ApplicationDeadline: req.ApplicationDeadline,
		ContactEmail:        req.ContactEmail,
		Skills:              req.Skills,
		CustomQuestions:     req.CustomQuestions,
		EmployerID:          employerID,
	})
	if err != nil {
		h.Fail(w, r, err, "Failed to post job. Internal Server Error.")
		return
	}
	h.JSON(w, 201, map[string]any{"success": true, "message": "Job posted successfully!", "job": job})
}

// coerceInt aceita requiredScore como número ou string numérica; default 0
func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return 0
}

// JobSubresource despacha GET /api/jobs/{jobId}/{sub}. Um único padrão de
// rota: literais no quarto segmento conflitariam com /api/jobs/recruiter/{userId}
// no ServeMux. O guard de role é por sub-recurso.
func (h *Handler) JobSubresource(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("sub") {
	case "applicants":
		RequireRoles(domain.RoleRecruiter)(h.GetJobApplicants)(w, r)
	case "applications-overview":
		RequireRoles(domain.RoleRecruiter)(h.GetApplicationsOverview)(w, r)
	case "questions":
		RequireRoles(domain.RoleJobSeeker)(h.GetJobQuestions)(w, r)
	default:
		h.Error(w, 404, "Not found.")
	}
}

// ownedJob carrega a vaga e valida que o recruiter autenticado é o dono
func (h *Handler) ownedJob(w http.ResponseWriter, r *http.Request, jobID, recruiterID, denyMsg string) (domain.Job, bool) {
	job, err := h.Store.GetJobByID(jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.Error(w, 404, "Job not found.")
			return domain.Job{}, false
		}
		h.Fail(w, r, err, "Failed to retrieve job.")
		return domain.Job{}, false
	}
	if job.EmployerID != recruiterID {
		h.Error(w, 403, denyMsg)
		return domain.Job{}, false
	}
	return job, true
}

func (h *Handler) GetJobApplicants(w http.ResponseWriter, r *http.Request) {
	recruiterID, _, _ := claims(r)
	job, ok := h.ownedJob(w, r, r.PathValue("jobId"), recruiterID, "You can only view applicants for jobs you posted.")
	if !ok {
		return
	}

	users, err := h.Store.Users()
	if err != nil {
		h.Fail(w, r, err, "Failed to fetch job applicants. Internal Server Error.")
		return
	}
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	enriched := []map[string]any{}
	for _, applicant := range job.Applicants {
		user, exists := byID[applicant.UserID]
		if !exists {
			continue
		}
		profileImage := user.ProfileImage
		if profileImage == "" {
			profileImage = "https://placehold.co/100x100/A0B4D8/ffffff?text=U"
		}
		enriched = append(enriched, map[string]any{
			"userId":         user.ID,
			"username":       user.Username,
			"email":          user.Email,
			"profileImage":   profileImage,
			"trainxProgress": user.TrainxProgress,
			"appliedDate":    applicant.AppliedDate,
			"status":         applicant.Status,
		})
	}
	h.JSON(w, 200, map[string]any{"success": true, "applicants": enriched, "jobTitle": job.Title})
}

func (h *Handler) GetPostedJobs(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != userID {
		h.Error(w, 403, "Access denied: You can only view jobs you posted.")
		return
	}

	if _, err := h.Store.GetUserByID(userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.Error(w, 404, "Recruiter user not found.")
			return
		}
		h.Fail(w, r, err, "Failed to retrieve posted jobs.")
		return
	}

	jobs, err := h.Store.Jobs()
	if err != nil {
		h.Fail(w, r, err, "Failed to retrieve posted jobs.")
		return
	}
	applications, err := h.Store.Applications()
	if err != nil {
		h.Fail(w, r, err, "Failed to retrieve posted jobs.")
		return
	}

	counts := map[string]int{}
	for _, app := range applications {
		counts[app.JobID]++
	}

	posted := []map[string]any{}
	for _, job := range jobs {
		if job.EmployerID != userID {
			continue
		}
		// A lista de applicants fica de fora; só a contagem sai
		job.Applicants = nil
		var asMap map[string]any
		raw, _ := json.Marshal(job)
		json.Unmarshal(raw, &asMap)
		delete(asMap, "applicants")
		asMap["applicantCount"] = counts[job.ID]
		posted = append(posted, asMap)
	}
	h.JSON(w, 200, map[string]any{"success": true, "postedJobs": posted})
}

func (h *Handler) GetApplicationsOverview(w http.ResponseWriter, r *http.Request) {
	recruiterID, _, _ := claims(r)
	job, ok := h.ownedJob(w, r, r.PathValue("jobId"), recruiterID, "You can only view applications for jobs you posted.")
	if !ok {
		return
	}

	applications, err := h.Store.Applications()
	if err != nil {
		h.Fail(w, r, err, "Failed to retrieve applications overview.")
		return
	}
	users, err := h.Store.Users()
	if err != nil {
		h.Fail(w, r, err, "Failed to retrieve applications overview.")
		return
	}
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	overview := []map[string]any{}
	for _, app := range applications {
		if app.JobID != job.ID {
			continue
		}
		applicant, exists := byID[app.UserID]

		var latestScore any = "N/A"
		if exists {
			if latest, found := service.LatestScore(applicant.AssessxScores); found {
				latestScore = latest.TotalScore
			}
		}
		username := app.ApplicantName
		var profileImage any
		if exists {
			username = applicant.Username
			profileImage = applicant.ProfileImage
		}
		overview = append(overview, map[string]any{
			"applicationId":         app.ID,
			"applicantId":           app.UserID,
			"applicantUsername":     username,
			"applicantEmail":        app.Email,
			"appliedDate":           app.AppliedAt,
			"status":                app.Status,
			"applicantProfileImage": profileImage,
			"latestAssessXScore":    latestScore,
		})
	}
	h.JSON(w, 200, map[string]any{"success": true, "applications": overview})
}

func (h *Handler) GetRecruiterJobs(w http.ResponseWriter, r *http.Request) {
	recruiterID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != recruiterID {
		h.Error(w, 403, "Forbidden: You can only view your own posted jobs.")
		return
	}

	jobs, err := h.Store.Jobs()
	if err != nil {
		h.Fail(w, r, err, "Failed to fetch jobs posted by recruiter. Internal Server Error.")
		return
	}
	recruiterJobs := []domain.Job{}
	for _, job := range jobs {
		if job.EmployerID == recruiterID {
			recruiterJobs = append(recruiterJobs, job)
		}
	}
	h.JSON(w, 200, map[string]any{"success": true, "jobs": recruiterJobs})
}

func (h *Handler) GetJobQuestions(w http.ResponseWriter, r *http.Request) {
	job, err := h.Store.GetJobByID(r.PathValue("jobId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.Error(w, 404, "Job not found.")
			return
		}
		h.Fail(w, r, err, "Failed to retrieve custom questions.")
		return
	}
	questions := job.CustomQuestions
	if questions == nil {
		questions = []domain.CustomQuestion{}
	}
	h.JSON(w, 200, map[string]any{"success": true, "customQuestions": questions})
}
