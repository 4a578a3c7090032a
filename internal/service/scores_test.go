package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestScore(t *testing.T) {
	t.Run("empty map", func(t *testing.T) {
		_, found := LatestScore(nil)
		assert.False(t, found)
		_, found = LatestScore(map[string]domain.ScoreEntry{})
		assert.False(t, found)
	})

	t.Run("single entry", func(t *testing.T) {
		entry, found := LatestScore(map[string]domain.ScoreEntry{
			"x": {TotalScore: 7, DateCompleted: "2025-03-01T10:00:00Z"},
		})
		require.True(t, found)
		assert.Equal(t, 7, entry.TotalScore)
	})

	t.Run("picks most recent by dateCompleted", func(t *testing.T) {
		entry, found := LatestScore(map[string]domain.ScoreEntry{
			"old":    {TotalScore: 90, DateCompleted: "2025-01-01T00:00:00Z"},
			"newest": {TotalScore: 40, DateCompleted: "2025-06-15T08:30:00Z"},
			"mid":    {TotalScore: 70, DateCompleted: "2025-03-01T00:00:00Z"},
		})
		require.True(t, found)
		assert.Equal(t, 40, entry.TotalScore, "o mais recente vence mesmo com score menor")
	})

	t.Run("unparseable dates sort oldest", func(t *testing.T) {
		entry, found := LatestScore(map[string]domain.ScoreEntry{
			"bad":  {TotalScore: 99, DateCompleted: "not-a-date"},
			"good": {TotalScore: 10, DateCompleted: "2025-01-01T00:00:00Z"},
		})
		require.True(t, found)
		assert.Equal(t, 10, entry.TotalScore)
	})
}

func TestLeaderboard(t *testing.T) {
	svc, _ := newTestService(t)

	var users []domain.User
	// 12 usuários com score == índice; dois sem score nenhum
	for i := 0; i < 12; i++ {
		users = append(users, domain.User{
			ID:       fmt.Sprintf("u%d", i),
			Username: fmt.Sprintf("user%d", i),
			AssessxScores: map[string]domain.ScoreEntry{
				"a": {TotalScore: i, DateCompleted: time.Now().UTC().Format(time.RFC3339)},
			},
		})
	}
	users = append(users,
		domain.User{ID: "noscore1", Username: "noscore1"},
		domain.User{ID: "noscore2", Username: "noscore2", AssessxScores: map[string]domain.ScoreEntry{}},
	)
	require.NoError(t, svc.Store.SaveUsers(users))

	board, err := svc.Leaderboard()
	require.NoError(t, err)

	assert.Len(t, board, 10, "top 10 apenas")
	assert.Equal(t, "user11", board[0].Username)
	assert.Equal(t, 11, board[0].TotalScore)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].TotalScore, board[i].TotalScore, "ordenado decrescente")
	}
	for _, entry := range board {
		assert.NotContains(t, entry.Username, "noscore")
	}
}
