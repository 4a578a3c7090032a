package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/Aman1684/medskillx/internal/security"
)

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, role := claims(r)
	if authID != userID && role != string(domain.RoleAdmin) {
		h.Error(w, 403, "Access denied: You can only view your own profile.")
		return
	}

	user, err := h.Store.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.Error(w, 404, "User not found.")
			return
		}
		h.Fail(w, r, err, "Failed to retrieve user data.")
		return
	}
	h.JSON(w, 200, map[string]any{"success": true, "user": user.Sanitized()})
}

// UpdateUser aplica o PUT genérico com allow-list de campos. Os campos de
// gating do AssessX (attemptsLeft, freeAttemptUsed, hasAccessedAssessXBefore)
// passam por aqui sem verificação de elegibilidade no servidor.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != userID {
		h.Error(w, 403, "Access denied: You can only update your own profile.")
		return
	}

	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.Error(w, 400, "Invalid JSON format in request body.")
		return
	}

	user, err := h.Service.UpdateUserFields(userID, updates)
	if err != nil {
		h.Fail(w, r, err, "Failed to update user data.")
		return
	}
	h.JSON(w, 200, map[string]any{"success": true, "message": "User data updated successfully!", "user": user})
}

func (h *Handler) SaveAssessxScore(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != userID {
		h.Error(w, 403, "Access denied: You can only update your own scores.")
		return
	}

	var req struct {
		TotalScore        *int   `json:"totalScore"`
		TotalQuestions    *int   `json:"totalQuestions"`
		CategoryBreakdown any    `json:"categoryBreakdown"`
		DateCompleted     string `json:"dateCompleted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, 400, "Invalid JSON format in request body.")
		return
	}
	if req.TotalScore == nil || req.TotalQuestions == nil || req.CategoryBreakdown == nil || req.DateCompleted == "" {
		h.Error(w, 400, "Missing score data (totalScore, totalQuestions, categoryBreakdown, dateCompleted are required).")
		return
	}

	user, attemptID, err := h.Service.RecordScore(userID, domain.ScoreEntry{
		TotalScore:        *req.TotalScore,
		TotalQuestions:    *req.TotalQuestions,
		CategoryBreakdown: req.CategoryBreakdown,
		DateCompleted:     req.DateCompleted,
	})
	if err != nil {
		h.Fail(w, r, err, "Failed to save assessment scores.")
		return
	}
	h.JSON(w, 200, map[string]any{
		"success":      true,
		"message":      "Assessment scores saved successfully!",
		"user":         user,
		"newAttemptId": attemptID,
	})
}

func (h *Handler) PromoteToRecruiter(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != userID {
		h.Error(w, 403, "Forbidden: You can only modify your own account.")
		return
	}

	user, token, already, err := h.Service.PromoteToRecruiter(userID)
	if err != nil {
		h.Fail(w, r, err, "Failed to promote user to recruiter.")
		return
	}

	message := "Successfully promoted to recruiter! You can now post jobs."
	if already {
		message = "User is already a recruiter."
	} else {
		h.Audit.LogPromotion(userID, security.ClientIP(r))
	}
	h.JSON(w, 200, map[string]any{
		"success": true,
		"message": message,
		"user":    user,
		"token":   token,
	})
}

// --- TrainX progress ---

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != userID {
		h.Error(w, 403, "Access denied: You can only view your own progress.")
		return
	}

	progress, err := h.Service.GetProgress(userID)
	if err != nil {
		h.Fail(w, r, err, "Failed to retrieve progress.")
		return
	}
	h.JSON(w, 200, map[string]any{"success": true, "progress": progress})
}

func (h *Handler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	authID, _, _ := claims(r)
	if authID != userID {
		h.Error(w, 403, "Access denied: You can only update your own progress.")
		return
	}

	var req struct {
		Progress map[string]any `json:"progress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, 400, "Invalid JSON format in request body.")
		return
	}
	if req.Progress == nil {
		h.Error(w, 400, "Progress data is required.")
		return
	}

	if err := h.Service.SaveProgress(userID, req.Progress); err != nil {
		h.Fail(w, r, err, "Failed to save progress.")
		return
	}
	h.JSON(w, 200, map[string]any{"success": true, "message": "Progress saved successfully!"})
}
