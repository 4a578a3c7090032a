package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/Aman1684/medskillx/internal/service"
	"github.com/Aman1684/medskillx/internal/validation"
)

// applicationJSONFields são os sub-objetos enviados como strings JSON no
// multipart, cada um parseado e validado individualmente contra seu schema
var applicationJSONFields = []string{
	"personalInfo", "education", "workExperience", "skills", "customAnswers", "consent",
}

func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	userID, _, _ := claims(r)

	// Folga acima do limite do arquivo para os campos de texto do formulário
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize+(1<<20))
	if err := r.ParseMultipartForm(maxResumeSize + (1 << 20)); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.Error(w, 413, "Resume file is too large. Max 5MB allowed.")
			return
		}
		h.Error(w, 400, "Invalid multipart form data.")
		return
	}

	resumeFilename, err := saveResume(r, h.Config.UploadsDir, userID)
	if err != nil {
		h.Fail(w, r, err, "Failed to submit application. Please try again. Internal Server Error.")
		return
	}

	jobID := r.FormValue("jobId")
	fields := make(map[string]json.RawMessage, len(applicationJSONFields))
	for _, field := range applicationJSONFields {
		raw := r.FormValue(field)
		if jobID == "" || raw == "" {
			removeResume(h.Config.UploadsDir, resumeFilename)
			h.Error(w, 400, "All application fields are required.")
			return
		}
		if err := validation.ValidateField(field, []byte(raw)); err != nil {
			removeResume(h.Config.UploadsDir, resumeFilename)
			h.Error(w, 400, err.Error())
			return
		}
		fields[field] = json.RawMessage(raw)
	}

	application, err := h.Service.SubmitApplication(userID, service.ApplicationSubmission{
		JobID:          jobID,
		PersonalInfo:   fields["personalInfo"],
		Education:      fields["education"],
		WorkExperience: fields["workExperience"],
		Skills:         fields["skills"],
		CustomAnswers:  fields["customAnswers"],
		Consent:        fields["consent"],
		ResumeFilename: resumeFilename,
	})
	if err != nil {
		removeResume(h.Config.UploadsDir, resumeFilename)
		h.Fail(w, r, err, "Failed to submit application. Please try again. Internal Server Error.")
		return
	}

	h.JSON(w, 201, map[string]any{
		"success":     true,
		"message":     "Application submitted successfully!",
		"application": application,
	})
}

func (h *Handler) GetUserApplications(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != userID {
		h.Error(w, 403, "Access denied: You can only view your own applications.")
		return
	}

	applications, err := h.Store.Applications()
	if err != nil {
		h.Fail(w, r, err, "Failed to retrieve applications.")
		return
	}
	jobs, err := h.Store.Jobs()
	if err != nil {
		h.Fail(w, r, err, "Failed to retrieve applications.")
		return
	}
	jobsByID := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}

	detailed := []map[string]any{}
	for _, app := range applications {
		if app.UserID != userID {
			continue
		}
		jobTitle, company := "Unknown Job", "Unknown Company"
		if job, ok := jobsByID[app.JobID]; ok {
			jobTitle, company = job.Title, job.Company
		}
		var asMap map[string]any
		raw, _ := json.Marshal(app)
		json.Unmarshal(raw, &asMap)
		asMap["jobTitle"] = jobTitle
		asMap["company"] = company
		detailed = append(detailed, asMap)
	}
	h.JSON(w, 200, map[string]any{"success": true, "applications": detailed})
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	recruiterID, _, _ := claims(r)

	application, err := h.Store.GetApplicationByID(r.PathValue("applicationId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.Error(w, 404, "Application not found.")
			return
		}
		h.Fail(w, r, err, "Failed to retrieve detailed application.")
		return
	}

	job, err := h.Store.GetJobByID(application.JobID)
	if err != nil || job.EmployerID != recruiterID {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			h.Fail(w, r, err, "Failed to retrieve detailed application.")
			return
		}
		h.Error(w, 403, "You can only view applications for jobs you posted.")
		return
	}

	var asMap map[string]any
	raw, _ := json.Marshal(application)
	json.Unmarshal(raw, &asMap)

	applicant, err := h.Store.GetUserByID(application.UserID)
	if err == nil {
		asMap["applicantTrainXProgress"] = applicant.TrainxProgress
		asMap["applicantAssessXScores"] = applicant.AssessxScores
	} else {
		asMap["applicantTrainXProgress"] = map[string]any{}
		asMap["applicantAssessXScores"] = map[string]any{}
	}
	h.JSON(w, 200, map[string]any{"success": true, "application": asMap})
}

func (h *Handler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	recruiterID, _, _ := claims(r)

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, 400, "Invalid JSON format in request body.")
		return
	}

	application, err := h.Service.UpdateApplicationStatus(r.PathValue("applicationId"), recruiterID, req.Status)
	if err != nil {
		h.Fail(w, r, err, "Failed to update application status.")
		return
	}
	h.JSON(w, 200, map[string]any{
		"success":     true,
		"message":     "Application status updated to " + req.Status + ".",
		"application": application,
	})
}
