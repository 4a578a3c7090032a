package http

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Aman1684/medskillx/internal/domain"
)

// DownloadCertificate serve o PDF de layout fixo do certificado de curso.
// A geração não é exposta por rota; só existe o download do arquivo já
// presente no diretório de certificados.
func (h *Handler) DownloadCertificate(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	courseTitle := r.PathValue("courseTitle") // ServeMux já decodifica o segmento

	if _, err := h.Store.GetUserByID(userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.Error(w, 404, "User not found")
			return
		}
		h.Fail(w, r, err, "Failed to download certificate.")
		return
	}

	courses, err := h.Store.Courses()
	if err != nil {
		h.Fail(w, r, err, "Failed to download certificate.")
		return
	}
	var course *domain.Course
	for i := range courses {
		if courses[i].Title == courseTitle {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		h.Error(w, 404, "Course not found")
		return
	}

	certFileName := "certificate_" + userID + "_" + url.PathEscape(course.Title) + ".pdf"
	certPath := filepath.Join(h.Config.CertificatesDir, certFileName)
	if _, err := os.Stat(certPath); err != nil {
		h.Error(w, 404, "Certificate not generated yet. Complete the course first.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+certFileName+`"`)
	http.ServeFile(w, r, certPath)
}
