// Package archive moves generated files from the active directory into
// dated archive folders once their retention window has passed.
package archive

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const dateLayout = "060102"

// Archiver sweeps the active directory on an interval and archives files
// older than the retention window into archiveDir/YYMMDD/.
type Archiver struct {
	activeDir  string
	archiveDir string
	retain     time.Duration
	interval   time.Duration
	log        *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(activeDir, archiveDir string, retain, interval time.Duration, log *slog.Logger) *Archiver {
	return &Archiver{
		activeDir:  activeDir,
		archiveDir: archiveDir,
		retain:     retain,
		interval:   interval,
		log:        log,
	}
}

// Start launches the sweep loop.
func (a *Archiver) Start(ctx context.Context) {
	sweepCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				moved, err := a.Sweep(time.Now())
				if err != nil {
					a.log.Error("archive sweep failed", "error", err)
				} else if moved > 0 {
					a.log.Info("archived expired files", "count", moved)
				}
			}
		}
	}()
}

// Stop shuts the sweep loop down and waits for it.
func (a *Archiver) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}

// Sweep moves every active file older than the retention window into the
// dated archive folder for now. It returns how many files moved.
func (a *Archiver) Sweep(now time.Time) (int, error) {
	entries, err := os.ReadDir(a.activeDir)
	if err != nil {
		return 0, fmt.Errorf("read active dir: %w", err)
	}

	cutoff := now.Add(-a.retain)
	daily := filepath.Join(a.archiveDir, now.Format(dateLayout))

	moved := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.MkdirAll(daily, 0o755); err != nil {
			return moved, fmt.Errorf("create archive dir: %w", err)
		}
		src := filepath.Join(a.activeDir, entry.Name())
		dst := filepath.Join(daily, entry.Name())
		if err := os.Rename(src, dst); err != nil {
			a.log.Error("archive move failed", "file", entry.Name(), "error", err)
			continue
		}
		a.log.Info("archived file", "file", entry.Name(), "to", daily)
		moved++
	}
	return moved, nil
}

// Stats summarizes the active and archived file populations.
type Stats struct {
	ActiveDocx  int `json:"docx"`
	ActiveTxt   int `json:"txt"`
	ActiveTotal int `json:"total"`
	Archived    int `json:"archived"`
}

func (a *Archiver) Stats() (Stats, error) {
	var st Stats

	entries, err := os.ReadDir(a.activeDir)
	if err != nil && !os.IsNotExist(err) {
		return st, fmt.Errorf("read active dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		st.ActiveTotal++
		switch {
		case strings.HasSuffix(entry.Name(), ".docx"):
			st.ActiveDocx++
		case strings.HasSuffix(entry.Name(), ".txt"):
			st.ActiveTxt++
		}
	}

	dates, err := os.ReadDir(a.archiveDir)
	if err != nil && !os.IsNotExist(err) {
		return st, fmt.Errorf("read archive dir: %w", err)
	}
	for _, date := range dates {
		if !date.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(a.archiveDir, date.Name()))
		if err != nil {
			continue
		}
		st.Archived += len(files)
	}

	return st, nil
}

// DateListing is one dated archive folder and its contents.
type DateListing struct {
	Date  string   `json:"date"`
	Count int      `json:"count"`
	Files []string `json:"files"`
}

// List returns the archive contents grouped by date, oldest first.
func (a *Archiver) List() ([]DateListing, error) {
	dates, err := os.ReadDir(a.archiveDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []DateListing{}, nil
		}
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	var out []DateListing
	for _, date := range dates {
		if !date.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(a.archiveDir, date.Name()))
		if err != nil {
			continue
		}
		listing := DateListing{Date: date.Name(), Count: len(entries), Files: make([]string, 0, len(entries))}
		for _, e := range entries {
			listing.Files = append(listing.Files, e.Name())
		}
		out = append(out, listing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if out == nil {
		out = []DateListing{}
	}
	return out, nil
}
