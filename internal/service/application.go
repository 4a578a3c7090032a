package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/Aman1684/medskillx/internal/domain"
)

// ApplicationSubmission carrega os campos já parseados do formulário
// multipart. ResumeFilename é o basename do arquivo já salvo em uploads/;
// em caso de erro o chamador é responsável por removê-lo.
type ApplicationSubmission struct {
	JobID          string
	PersonalInfo   json.RawMessage
	Education      json.RawMessage
	WorkExperience json.RawMessage
	Skills         json.RawMessage
	CustomAnswers  json.RawMessage
	Consent        json.RawMessage
	ResumeFilename string
}

// SubmitApplication grava a candidatura e as referências cruzadas na vaga e
// no usuário: três reescritas de arquivo em sequência, sem rollback se uma
// escrita posterior falhar depois de uma anterior ter sucesso.
func (s *Service) SubmitApplication(userID string, sub ApplicationSubmission) (domain.Application, error) {
	var consent struct {
		DataProcessing      bool `json:"dataProcessing"`
		AccuracyDeclaration bool `json:"accuracyDeclaration"`
	}
	if err := json.Unmarshal(sub.Consent, &consent); err != nil || !consent.DataProcessing || !consent.AccuracyDeclaration {
		return domain.Application{}, domain.Errf(http.StatusBadRequest,
			"Consent for data processing and accuracy declaration is required.")
	}

	applications, err := s.Store.Applications()
	if err != nil {
		return domain.Application{}, err
	}
	users, err := s.Store.Users()
	if err != nil {
		return domain.Application{}, err
	}
	jobs, err := s.Store.Jobs()
	if err != nil {
		return domain.Application{}, err
	}

	jobIdx := -1
	for i := range jobs {
		if jobs[i].ID == sub.JobID {
			jobIdx = i
			break
		}
	}
	if jobIdx == -1 {
		return domain.Application{}, domain.Errf(http.StatusNotFound, "Job not found.")
	}

	userIdx := -1
	for i := range users {
		if users[i].ID == userID {
			userIdx = i
			break
		}
	}
	if userIdx == -1 {
		return domain.Application{}, domain.Errf(http.StatusNotFound, "Applicant user not found.")
	}

	if slices.Contains(users[userIdx].AppliedJobs, sub.JobID) {
		return domain.Application{}, domain.Errf(http.StatusConflict, "You have already applied for this job.")
	}

	var personal struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := json.Unmarshal(sub.PersonalInfo, &personal); err != nil {
		return domain.Application{}, domain.Errf(http.StatusBadRequest, "Invalid JSON format for field personalInfo.")
	}

	newApplication := domain.Application{
		ID:             newHexID(),
		JobID:          sub.JobID,
		UserID:         userID,
		ApplicantName:  personal.FirstName + " " + personal.LastName,
		Email:          personal.Email,
		PersonalInfo:   sub.PersonalInfo,
		Education:      sub.Education,
		WorkExperience: sub.WorkExperience,
		Skills:         sub.Skills,
		CustomAnswers:  sub.CustomAnswers,
		Consent:        sub.Consent,
		ResumePath:     sub.ResumeFilename,
		Status:         domain.ApplicationStatusInitial,
		AppliedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	applications = append(applications, newApplication)
	if err := s.Store.SaveApplications(applications); err != nil {
		return domain.Application{}, err
	}

	jobs[jobIdx].Applicants = append(jobs[jobIdx].Applicants, domain.Applicant{
		UserID:        userID,
		ApplicationID: newApplication.ID,
		Status:        domain.ApplicationStatusInitial,
		AppliedDate:   newApplication.AppliedAt,
	})
	if err := s.Store.SaveJobs(jobs); err != nil {
		return domain.Application{}, err
	}

	users[userIdx].AppliedJobs = append(users[userIdx].AppliedJobs, sub.JobID)
	if err := s.Store.SaveUsers(users); err != nil {
		return domain.Application{}, err
	}

	return newApplication, nil
}

// UpdateApplicationStatus muda o status (enum minúsculo) de uma candidatura,
// exigindo que o recruiter seja o dono da vaga
func (s *Service) UpdateApplicationStatus(applicationID, recruiterID, status string) (domain.Application, error) {
	if !slices.Contains(domain.ApplicationStatuses, status) {
		return domain.Application{}, domain.Errf(http.StatusBadRequest,
			"Invalid status provided. Must be one of: pending, reviewed, interview, rejected, hired.")
	}

	applications, err := s.Store.Applications()
	if err != nil {
		return domain.Application{}, err
	}
	idx := -1
	for i := range applications {
		if applications[i].ID == applicationID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Application{}, domain.Errf(http.StatusNotFound, "Application not found.")
	}

	job, err := s.Store.GetJobByID(applications[idx].JobID)
	if err != nil || job.EmployerID != recruiterID {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return domain.Application{}, err
		}
		return domain.Application{}, domain.Errf(http.StatusForbidden, "You can only update applications for jobs you posted.")
	}

	applications[idx].Status = status
	if err := s.Store.SaveApplications(applications); err != nil {
		return domain.Application{}, err
	}
	return applications[idx], nil
}
