package jsonstore

import (
	"fmt"

	"github.com/Aman1684/medskillx/internal/domain"
)

func (s *Store) Applications() ([]domain.Application, error) {
	return readJSON(s.path(applicationsFile), []domain.Application{})
}

func (s *Store) SaveApplications(apps []domain.Application) error {
	return writeJSON(s.path(applicationsFile), apps)
}

func (s *Store) GetApplicationByID(id string) (domain.Application, error) {
	apps, err := s.Applications()
	if err != nil {
		return domain.Application{}, err
	}
	for _, a := range apps {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Application{}, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
}
