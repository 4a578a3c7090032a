package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aman1684/medskillx/internal/domain"
)

const maxResumeSize = 5 << 20 // 5MB

var allowedResumeExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// saveResume valida e grava o currículo do multipart em uploads/, com nome
// userID-timestamp.ext. Devolve o basename gravado; em erros posteriores o
// chamador remove o arquivo.
func saveResume(r *http.Request, uploadsDir, userID string) (string, error) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		return "", domain.Errf(http.StatusBadRequest, "Resume file is required after upload processing.")
	}
	defer file.Close()

	if header.Size > maxResumeSize {
		return "", domain.Errf(http.StatusRequestEntityTooLarge, "Resume file is too large. Max 5MB allowed.")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedResumeExts[ext] {
		return "", domain.Errf(http.StatusBadRequest, "Only PDF, DOC, and DOCX files are allowed for resume upload!")
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s-%d%s", userID, time.Now().UnixMilli(), ext)
	dst, err := os.Create(filepath.Join(uploadsDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, maxResumeSize+1)); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return filename, nil
}

// removeResume apaga um upload já gravado (falha de validação ou de escrita
// posterior no fluxo de submissão)
func removeResume(uploadsDir, filename string) {
	if filename == "" {
		return
	}
	os.Remove(filepath.Join(uploadsDir, filename))
}
