package jsonstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store persiste cada entidade como um arquivo JSON inteiro: toda escrita
// reescreve o arquivo completo, sem lock e sem transação entre arquivos.
// Dois writers concorrentes sobre o mesmo arquivo: último vence.
type Store struct {
	dir string
}

// Nomes dos arquivos dentro do diretório de dados
const (
	usersFile         = "users.json"
	jobsFile          = "jobs.json"
	applicationsFile  = "applications.json"
	coursesFile       = "courses.json"
	questionsFile     = "questions.json"
	testimonialsFile  = "testimonials.json"
	featureCardsFile  = "featureCards.json"
	impactMetricsFile = "impactMetrics.json"
	newsletterFile    = "newsletterSubscribers.json"
)

// NewStore garante o diretório de dados e devolve o store
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON carrega o arquivo inteiro; se não existir, inicializa com o default
func readJSON[T any](path string, def T) (T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if werr := writeJSON(path, def); werr != nil {
			return def, werr
		}
		return def, nil
	}
	if err != nil {
		return def, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def, err
	}
	return v, nil
}

// writeJSON reescreve o arquivo inteiro
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
