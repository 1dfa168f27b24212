package archive

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testArchiver(t *testing.T) (*Archiver, string, string) {
	t.Helper()
	active := t.TempDir()
	archived := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(active, archived, 24*time.Hour, time.Minute, log), active, archived
}

func writeFile(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
}

func TestSweep_MovesOnlyExpiredFiles(t *testing.T) {
	a, active, archived := testArchiver(t)

	writeFile(t, active, "old.docx", 25*time.Hour)
	writeFile(t, active, "old.txt", 25*time.Hour)
	writeFile(t, active, "fresh.docx", time.Hour)

	now := time.Now()
	moved, err := a.Sweep(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved != 2 {
		t.Errorf("expected 2 files moved, got %d", moved)
	}

	daily := filepath.Join(archived, now.Format(dateLayout))
	for _, name := range []string{"old.docx", "old.txt"} {
		if _, err := os.Stat(filepath.Join(daily, name)); err != nil {
			t.Errorf("expected %s in daily archive: %v", name, err)
		}
		if _, err := os.Stat(filepath.Join(active, name)); !os.IsNotExist(err) {
			t.Errorf("expected %s gone from active dir", name)
		}
	}
	if _, err := os.Stat(filepath.Join(active, "fresh.docx")); err != nil {
		t.Errorf("expected fresh.docx kept in active dir: %v", err)
	}
}

func TestSweep_EmptyActiveDir(t *testing.T) {
	a, _, _ := testArchiver(t)
	moved, err := a.Sweep(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved != 0 {
		t.Errorf("expected 0 moved, got %d", moved)
	}
}

func TestStats_CountsActiveAndArchived(t *testing.T) {
	a, active, archived := testArchiver(t)

	writeFile(t, active, "a.docx", 0)
	writeFile(t, active, "a.txt", 0)
	writeFile(t, active, "b.docx", 0)

	daily := filepath.Join(archived, "260101")
	if err := os.MkdirAll(daily, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, daily, "archived.docx", 0)

	st, err := a.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.ActiveDocx != 2 || st.ActiveTxt != 1 || st.ActiveTotal != 3 {
		t.Errorf("unexpected active counts: %+v", st)
	}
	if st.Archived != 1 {
		t.Errorf("expected 1 archived, got %d", st.Archived)
	}
}

func TestList_GroupsByDate(t *testing.T) {
	a, _, archived := testArchiver(t)

	for _, date := range []string{"260102", "260101"} {
		daily := filepath.Join(archived, date)
		if err := os.MkdirAll(daily, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		writeFile(t, daily, date+".docx", 0)
	}

	listings, err := a.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(listings))
	}
	if listings[0].Date != "260101" || listings[1].Date != "260102" {
		t.Errorf("expected dates sorted ascending, got %q, %q", listings[0].Date, listings[1].Date)
	}
	if listings[0].Count != 1 || len(listings[0].Files) != 1 {
		t.Errorf("unexpected listing contents: %+v", listings[0])
	}
}

func TestList_EmptyArchive(t *testing.T) {
	a, _, _ := testArchiver(t)
	listings, err := a.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("expected empty listing, got %d", len(listings))
	}
}
