package http

import (
	"encoding/json"
	"net/http"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/Aman1684/medskillx/internal/security"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string      `json:"username"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     domain.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, 400, "Invalid JSON format in request body.")
		return
	}

	user, err := h.Service.RegisterUser(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		h.Fail(w, r, err, "Server error during registration.")
		return
	}

	h.Audit.LogRegister(user.ID, security.ClientIP(r))
	h.JSON(w, 201, map[string]any{
		"success": true,
		"message": "Registration successful!",
		"user":    user,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, 400, "Invalid JSON format in request body.")
		return
	}

	user, token, err := h.Service.LoginUser(req.Username, req.Password)
	if err != nil {
		h.Audit.LogLogin(req.Username, security.ClientIP(r), false)
		h.Fail(w, r, err, "Server error during login.")
		return
	}

	h.Audit.LogLogin(user.ID, security.ClientIP(r), true)
	h.JSON(w, 200, map[string]any{
		"success": true,
		"message": "Login successful!",
		"user":    user,
		"token":   token,
	})
}
