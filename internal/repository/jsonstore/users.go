package jsonstore

import (
	"fmt"

	"github.com/Aman1684/medskillx/internal/domain"
)

func (s *Store) Users() ([]domain.User, error) {
	return readJSON(s.path(usersFile), []domain.User{})
}

func (s *Store) SaveUsers(users []domain.User) error {
	return writeJSON(s.path(usersFile), users)
}

func (s *Store) GetUserByID(id string) (domain.User, error) {
	users, err := s.Users()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

// GetUserByUsernameOrEmail resolve o login tanto por username quanto por email
func (s *Store) GetUserByUsernameOrEmail(login string) (domain.User, error) {
	users, err := s.Users()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("user %s: %w", login, domain.ErrNotFound)
}
