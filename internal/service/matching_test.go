package service

import (
	"testing"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{ID: "a", Title: "Nurse", Location: "Lagos", Salary: "50k-70k", Type: "Full-time", WorkTypes: []string{"Full-time", "Remote"}, RequiredScore: 0},
		{ID: "b", Title: "Surgeon", Location: "Abuja", Salary: "100k+", Type: "Full-time", RequiredScore: 80},
		{ID: "c", Title: "Lab Tech", Location: "Lagos", Salary: "30k-50k", Type: "Part-time", WorkTypes: []string{"Part-time"}, RequiredScore: 40},
		{ID: "d", Title: "Pharmacist", Location: "Remote", Salary: "50k-70k", Type: "Contract", RequiredScore: 55},
	}
}

func jobIDs(jobs []domain.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestFilterJobs(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		location string
		salary   string
		workType string
		expected []string
	}{
		{name: "score zero only unrestricted jobs", score: 0, expected: []string{"a"}},
		{name: "score admits equal requiredScore", score: 40, expected: []string{"a", "c"}},
		{name: "high score admits everything", score: 100, expected: []string{"a", "b", "c", "d"}},
		{name: "location exact match", score: 100, location: "Lagos", expected: []string{"a", "c"}},
		{name: "location All disables filter", score: 100, location: "All", expected: []string{"a", "b", "c", "d"}},
		{name: "salary exact match", score: 100, salary: "50k-70k", expected: []string{"a", "d"}},
		{name: "workType contains in workTypes", score: 100, workType: "Remote", expected: []string{"a"}},
		{name: "workType falls back to scalar type", score: 100, workType: "Contract", expected: []string{"d"}},
		{name: "combined filters", score: 50, location: "Lagos", workType: "Part-time", expected: []string{"c"}},
		{name: "no match yields empty set", score: 10, location: "Abuja", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterJobs(sampleJobs(), tt.score, tt.location, tt.salary, tt.workType)
			assert.Equal(t, tt.expected, jobIDs(got))
		})
	}
}

// O filtro nunca devolve vaga com requiredScore acima do score consultado
func TestFilterJobsNeverExceedsScore(t *testing.T) {
	for _, score := range []int{0, 39, 40, 79, 80, 200} {
		for _, job := range FilterJobs(sampleJobs(), score, "", "", "") {
			assert.LessOrEqual(t, job.RequiredScore, score,
				"job %s devolvido para score %d", job.ID, score)
		}
	}
}
