// Package store generates DOCX/TXT file pairs in the active directory.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/docgen/internal/convert"
	"github.com/dgallion1/docgen/internal/docfile"
)

// Store writes generated documents, together with their source text, into
// the active directory the archiver later sweeps.
type Store struct {
	activeDir    string
	templatePath string
	conv         *convert.Converter
	log          *slog.Logger
}

func New(activeDir, templatePath string, conv *convert.Converter, log *slog.Logger) *Store {
	return &Store{
		activeDir:    activeDir,
		templatePath: templatePath,
		conv:         conv,
		log:          log,
	}
}

// Result names the file pair produced by one generation.
type Result struct {
	DocxName string
	TxtName  string
}

// Generate converts text and writes both the .docx and the source .txt.
// With plain set, the legacy non-Markdown conversion is used.
func (s *Store) Generate(text, customName string, plain bool) (Result, error) {
	docxName := buildFilename(time.Now(), customName, text)
	txtName := strings.TrimSuffix(docxName, ".docx") + ".txt"

	// Source text is kept alongside the document for archival.
	txtPath := filepath.Join(s.activeDir, txtName)
	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		return Result{}, fmt.Errorf("write source text: %w", err)
	}
	s.log.Info("saved source text", "filename", txtName)

	doc := s.openDocument()
	if plain {
		s.conv.ConvertPlain(doc, text)
	} else {
		s.conv.Convert(doc, text)
	}

	docxPath := filepath.Join(s.activeDir, docxName)
	if err := doc.SaveTo(docxPath); err != nil {
		return Result{}, fmt.Errorf("save docx: %w", err)
	}
	s.log.Info("generated docx", "filename", docxName)

	return Result{DocxName: docxName, TxtName: txtName}, nil
}

// openDocument loads the configured template when present, falling back to
// an empty document on any failure. Generation never fails on template
// problems.
func (s *Store) openDocument() *docfile.Document {
	if s.templatePath == "" {
		return docfile.New()
	}
	if _, err := os.Stat(s.templatePath); err != nil {
		return docfile.New()
	}
	doc, err := docfile.Open(s.templatePath)
	if err != nil {
		s.log.Warn("template load failed, using empty document", "path", s.templatePath, "error", err)
		return docfile.New()
	}
	return doc
}
