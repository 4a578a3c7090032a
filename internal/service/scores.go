package service

import (
	"sort"
	"time"

	"github.com/Aman1684/medskillx/internal/domain"
)

// LatestScore devolve a entrada mais recente do mapa de resultados, por
// dateCompleted decrescente. Função única — a derivação não é duplicada
// nos pontos de uso (leaderboard e visões de candidatura).
func LatestScore(scores map[string]domain.ScoreEntry) (domain.ScoreEntry, bool) {
	var latest domain.ScoreEntry
	var latestAt time.Time
	found := false
	for _, entry := range scores {
		at, err := time.Parse(time.RFC3339, entry.DateCompleted)
		if err != nil {
			// Datas não parseáveis ordenam como as mais antigas
			at = time.Time{}
		}
		if !found || at.After(latestAt) {
			latest = entry
			latestAt = at
			found = true
		}
	}
	return latest, found
}

// LeaderboardEntry é uma linha do ranking público
type LeaderboardEntry struct {
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	ProfileImage  string `json:"profileImage,omitempty"`
	TotalScore    int    `json:"totalScore"`
	DateCompleted string `json:"dateCompleted"`
}

// Leaderboard monta o top 10 pelo resultado mais recente de cada usuário
func (s *Service) Leaderboard() ([]LeaderboardEntry, error) {
	users, err := s.Store.Users()
	if err != nil {
		return nil, err
	}

	entries := []LeaderboardEntry{}
	for _, u := range users {
		latest, ok := LatestScore(u.AssessxScores)
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			UserID:        u.ID,
			Username:      u.Username,
			ProfileImage:  u.ProfileImage,
			TotalScore:    latest.TotalScore,
			DateCompleted: latest.DateCompleted,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	if len(entries) > 10 {
		entries = entries[:10]
	}
	return entries, nil
}
