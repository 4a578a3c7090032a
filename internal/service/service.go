package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Aman1684/medskillx/internal/config"
	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/Aman1684/medskillx/internal/repository/jsonstore"
	"github.com/Aman1684/medskillx/internal/security"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Store  *jsonstore.Store
	Config *config.Config
}

func NewService(store *jsonstore.Store, cfg *config.Config) *Service {
	return &Service{Store: store, Config: cfg}
}

// newHexID gera o id de 32 caracteres hex usado em vagas e candidaturas
func newHexID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// --- Auth Services ---

// GenerateToken emite um JWT de 24h com {userId, username, role}.
// O role fica embutido no token: mudança de role exige token novo.
func (s *Service) GenerateToken(u domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   u.ID,
		"username": u.Username,
		"role":     string(u.Role),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(s.Config.JWTSecret))
}

func (s *Service) RegisterUser(username, email, password string, role domain.Role) (domain.User, error) {
	if username == "" || email == "" || password == "" {
		return domain.User{}, domain.Errf(http.StatusBadRequest, "All fields are required.")
	}
	if err := security.ValidateEmail(email); err != nil {
		return domain.User{}, domain.Errf(http.StatusBadRequest, "%s", err.Error())
	}
	if err := security.ValidatePassword(password); err != nil {
		return domain.User{}, domain.Errf(http.StatusBadRequest, "%s", err.Error())
	}
	if role == "" {
		role = domain.RoleJobSeeker
	}
	if role != domain.RoleJobSeeker && role != domain.RoleRecruiter {
		return domain.User{}, domain.Errf(http.StatusBadRequest, `Invalid role provided. Must be "jobSeeker" or "recruiter".`)
	}

	users, err := s.Store.Users()
	if err != nil {
		return domain.User{}, err
	}
	// Unicidade por varredura linear; só é checada aqui
	for _, u := range users {
		if u.Username == username {
			return domain.User{}, domain.Errf(http.StatusConflict, "Username already taken.")
		}
	}
	for _, u := range users {
		if u.Email == email {
			return domain.User{}, domain.Errf(http.StatusConflict, "Email already registered.")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	newUser := domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		Password:       string(hashed),
		Role:           role,
		ProfileImage:   fmt.Sprintf("https://placehold.co/100x100/A0B4D8/ffffff?text=%c", upperFirst(username)),
		TrainxProgress: map[string]any{},
		AssessxScores:  map[string]domain.ScoreEntry{},
		AppliedJobs:    []string{},
		AttemptsLeft:   3,
	}
	if role == domain.RoleRecruiter {
		newUser.JobPostings = []string{}
	}

	users = append(users, newUser)
	if err := s.Store.SaveUsers(users); err != nil {
		return domain.User{}, err
	}
	return newUser.Sanitized(), nil
}

func upperFirst(s string) rune {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return r - 32
		}
		return r
	}
	return 'U'
}

// LoginUser autentica por username ou email. A mesma mensagem 401 cobre
// usuário desconhecido e senha errada — não vazar qual dos dois falhou.
func (s *Service) LoginUser(login, password string) (domain.User, string, error) {
	invalid := domain.Errf(http.StatusUnauthorized, "Invalid username/email or password.")

	u, err := s.Store.GetUserByUsernameOrEmail(login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", invalid
		}
		return domain.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.User{}, "", invalid
	}

	token, err := s.GenerateToken(u)
	if err != nil {
		return domain.User{}, "", err
	}
	return u.Sanitized(), token, nil
}

// PromoteToRecruiter promove o próprio usuário a recruiter. Idempotente;
// sempre devolve token novo porque o role vive dentro do token.
func (s *Service) PromoteToRecruiter(userID string) (domain.User, string, bool, error) {
	users, err := s.Store.Users()
	if err != nil {
		return domain.User{}, "", false, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.User{}, "", false, domain.Errf(http.StatusNotFound, "User not found.")
	}

	already := users[idx].Role == domain.RoleRecruiter
	if !already {
		users[idx].Role = domain.RoleRecruiter
		if users[idx].JobPostings == nil {
			users[idx].JobPostings = []string{}
		}
		if err := s.Store.SaveUsers(users); err != nil {
			return domain.User{}, "", false, err
		}
	}

	token, err := s.GenerateToken(users[idx])
	if err != nil {
		return domain.User{}, "", false, err
	}
	return users[idx].Sanitized(), token, already, nil
}

// --- User Services ---

// UpdatableUserFields é o allow-list do PUT genérico de usuário. Inclui os
// campos de gating do AssessX: o servidor aceita o que o cliente mandar aqui
// e não verifica elegibilidade de tentativa de forma independente.
var UpdatableUserFields = []string{
	"username", "email", "profileImage",
	"attemptsLeft", "freeAttemptUsed", "hasAccessedAssessXBefore",
}

func (s *Service) UpdateUserFields(userID string, updates map[string]any) (domain.User, error) {
	users, err := s.Store.Users()
	if err != nil {
		return domain.User{}, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.User{}, domain.Errf(http.StatusNotFound, "User not found.")
	}

	u := &users[idx]
	for _, field := range UpdatableUserFields {
		v, ok := updates[field]
		if !ok {
			continue
		}
		switch field {
		case "username":
			if s, ok := v.(string); ok {
				u.Username = s
			}
		case "email":
			if s, ok := v.(string); ok {
				u.Email = s
			}
		case "profileImage":
			if s, ok := v.(string); ok {
				u.ProfileImage = s
			}
		case "attemptsLeft":
			if n, ok := v.(float64); ok {
				u.AttemptsLeft = int(n)
			}
		case "freeAttemptUsed":
			if b, ok := v.(bool); ok {
				u.FreeAttemptUsed = b
			}
		case "hasAccessedAssessXBefore":
			if b, ok := v.(bool); ok {
				u.HasAccessedAssessXBefore = b
			}
		}
	}

	if err := s.Store.SaveUsers(users); err != nil {
		return domain.User{}, err
	}
	return users[idx].Sanitized(), nil
}

// RecordScore grava um resultado do AssessX sob um attemptId novo
func (s *Service) RecordScore(userID string, entry domain.ScoreEntry) (domain.User, string, error) {
	users, err := s.Store.Users()
	if err != nil {
		return domain.User{}, "", err
	}
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.User{}, "", domain.Errf(http.StatusNotFound, "User not found.")
	}

	if users[idx].AssessxScores == nil {
		users[idx].AssessxScores = map[string]domain.ScoreEntry{}
	}
	attemptID := uuid.New().String()
	users[idx].AssessxScores[attemptID] = entry

	if err := s.Store.SaveUsers(users); err != nil {
		return domain.User{}, "", err
	}
	return users[idx].Sanitized(), attemptID, nil
}

// --- TrainX Services ---

func (s *Service) GetProgress(userID string) (map[string]any, error) {
	u, err := s.Store.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Errf(http.StatusNotFound, "User not found.")
		}
		return nil, err
	}
	if u.TrainxProgress == nil {
		return map[string]any{}, nil
	}
	return u.TrainxProgress, nil
}

// SaveProgress substitui o mapa de progresso inteiro do usuário
func (s *Service) SaveProgress(userID string, progress map[string]any) error {
	users, err := s.Store.Users()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			users[i].TrainxProgress = progress
			return s.Store.SaveUsers(users)
		}
	}
	return domain.Errf(http.StatusNotFound, "User not found.")
}
