package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type generateRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
	Plain    bool   `json:"plain"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		jsonError(w, "no text provided", http.StatusBadRequest)
		return
	}

	start := time.Now()
	result, err := s.store.Generate(req.Text, req.Filename, req.Plain)
	if err != nil {
		s.log.Error("generation failed", "error", err)
		jsonError(w, "failed to generate docx", http.StatusInternalServerError)
		return
	}
	s.latency.Record(time.Since(start).Milliseconds())

	expiresAt := time.Now().Add(s.cfg.ArchiveAfter)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"download_url":    fmt.Sprintf("%s/download/%s", s.cfg.PublicURL, result.DocxName),
		"filename":        result.DocxName,
		"source_filename": result.TxtName,
		"expires_at":      expiresAt.Format(time.RFC3339),
		"message":         fmt.Sprintf("DOCX generated successfully. Files will be archived after %s.", s.cfg.ArchiveAfter),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	fileStats, err := s.archiver.Stats()
	if err != nil {
		jsonError(w, "failed to collect stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"active_files":   fileStats,
		"generation_ms":  s.latency.Snapshot(),
		"active_folder":  s.cfg.ActiveDir,
		"archive_folder": s.cfg.ArchiveDir,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
