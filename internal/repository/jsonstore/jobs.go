package jsonstore

import (
	"fmt"

	"github.com/Aman1684/medskillx/internal/domain"
)

func (s *Store) Jobs() ([]domain.Job, error) {
	return readJSON(s.path(jobsFile), []domain.Job{})
}

func (s *Store) SaveJobs(jobs []domain.Job) error {
	return writeJSON(s.path(jobsFile), jobs)
}

func (s *Store) GetJobByID(id string) (domain.Job, error) {
	jobs, err := s.Jobs()
	if err != nil {
		return domain.Job{}, err
	}
	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return domain.Job{}, fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
}
