package service

import (
	"net/http"
	"slices"
	"time"

	"github.com/Aman1684/medskillx/internal/domain"
)

// FilterJobs aplica o filtro de matching em memória: nunca devolve vaga com
// requiredScore acima do score informado; location e salary são match exato
// ("All" desliga o filtro); workType é contains no array workTypes, com
// fallback no campo escalar type. Sem ranking e sem paginação.
func FilterJobs(jobs []domain.Job, score int, location, salary, workType string) []domain.Job {
	filtered := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.RequiredScore > score {
			continue
		}
		if location != "" && location != "All" && job.Location != location {
			continue
		}
		if salary != "" && salary != "All" && job.Salary != salary {
			continue
		}
		if workType != "" && workType != "All" {
			if !slices.Contains(job.WorkTypes, workType) && job.Type != workType {
				continue
			}
		}
		filtered = append(filtered, job)
	}
	return filtered
}

func (s *Service) ListJobs(score int, location, salary, workType string) ([]domain.Job, error) {
	jobs, err := s.Store.Jobs()
	if err != nil {
		return nil, err
	}
	return FilterJobs(jobs, score, location, salary, workType), nil
}

// CreateJob publica uma vaga em nome do recruiter autenticado
func (s *Service) CreateJob(job domain.Job) (domain.Job, error) {
	if job.Title == "" || job.Description == "" || job.Location == "" ||
		job.Salary == "" || job.Type == "" || job.Experience == "" || job.Company == "" {
		return domain.Job{}, domain.Errf(http.StatusBadRequest,
			"All core job fields (title, description, company, location, salary, work type, experience level) are required.")
	}
	if job.EmployerID == "" {
		return domain.Job{}, domain.Errf(http.StatusBadRequest, "Employer ID not found from token.")
	}

	job.ID = newHexID()
	job.PostedAt = time.Now().UTC().Format(time.RFC3339)
	job.Applicants = []domain.Applicant{}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if job.CustomQuestions == nil {
		job.CustomQuestions = []domain.CustomQuestion{}
	}

	jobs, err := s.Store.Jobs()
	if err != nil {
		return domain.Job{}, err
	}
	jobs = append(jobs, job)
	if err := s.Store.SaveJobs(jobs); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}
