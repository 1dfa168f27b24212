package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleDownload serves a generated file from the active directory.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := sanitizeFilename(chi.URLParam(r, "filename"))

	path := filepath.Join(s.cfg.ActiveDir, filename)
	if _, err := os.Stat(path); err != nil {
		s.log.Warn("file not found", "filename", filename)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "file not found",
			"message": "The file may have been archived or deleted after its retention period.",
		})
		return
	}

	s.log.Info("downloading file", "filename", filename)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	http.ServeFile(w, r, path)
}

// handleListArchives lists archived files grouped by date.
func (s *Server) handleListArchives(w http.ResponseWriter, r *http.Request) {
	listings, err := s.archiver.List()
	if err != nil {
		jsonError(w, "failed to list archives: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"archives": listings})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
