package jsonstore

import (
	"encoding/json"

	"github.com/Aman1684/medskillx/internal/domain"
)

func (s *Store) Courses() ([]domain.Course, error) {
	return readJSON(s.path(coursesFile), []domain.Course{})
}

func (s *Store) SaveCourses(courses []domain.Course) error {
	return writeJSON(s.path(coursesFile), courses)
}

// Coleções de conteúdo são servidas como JSON opaco (pass-through)

func (s *Store) Questions() (json.RawMessage, error) {
	return readJSON(s.path(questionsFile), json.RawMessage("[]"))
}

func (s *Store) Testimonials() (json.RawMessage, error) {
	return readJSON(s.path(testimonialsFile), json.RawMessage("[]"))
}

func (s *Store) FeatureCards() (json.RawMessage, error) {
	return readJSON(s.path(featureCardsFile), json.RawMessage("[]"))
}

func (s *Store) ImpactMetrics() (json.RawMessage, error) {
	return readJSON(s.path(impactMetricsFile), json.RawMessage("[]"))
}

func (s *Store) Subscribers() ([]string, error) {
	return readJSON(s.path(newsletterFile), []string{})
}

func (s *Store) SaveSubscribers(emails []string) error {
	return writeJSON(s.path(newsletterFile), emails)
}
