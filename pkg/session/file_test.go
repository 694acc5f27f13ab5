package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/verdant-cli/verdant/pkg/errors"
)

func TestNewRecord(t *testing.T) {
	start := time.Date(2026, 8, 24, 14, 30, 0, 0, time.UTC)
	rec := NewRecord("orange-tree", 45*time.Minute, start)

	if rec.ID == "" {
		t.Error("record has no ID")
	}
	if rec.Variant != "orange-tree" {
		t.Errorf("Variant = %q", rec.Variant)
	}
	if rec.PlannedMins != 45 {
		t.Errorf("PlannedMins = %v", rec.PlannedMins)
	}
	if !rec.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v", rec.StartedAt)
	}

	other := NewRecord("tree", time.Minute, start)
	if other.ID == rec.ID {
		t.Error("two records share an ID")
	}
}

func TestKeyFormat(t *testing.T) {
	at := time.Date(2026, 8, 24, 14, 32, 1, 0, time.UTC)
	if got := Key(at); got != "2026-08-24|14:32:01" {
		t.Errorf("Key = %q", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecord("flower", 25*time.Minute, time.Now().UTC())
	rec.FinishedAt = rec.StartedAt.Add(25 * time.Minute)
	rec.SVGPath = "/tmp/plant.svg"

	if err := store.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Variant != rec.Variant || got.SVGPath != rec.SVGPath || got.PlannedMins != rec.PlannedMins {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(rec.StartedAt) || !got.FinishedAt.Equal(rec.FinishedAt) {
		t.Errorf("timestamps changed: %+v", got)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get("nope"); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Get(missing) error = %v, want SESSION_NOT_FOUND", err)
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecord("tree", time.Minute, time.Now().UTC())
	if err := store.Save(rec); err != nil {
		t.Fatal(err)
	}
	rec.Interrupted = true
	if err := store.Save(rec); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Interrupted {
		t.Error("overwrite not persisted")
	}
}

func TestFileStoreListNewestFirst(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		rec := NewRecord("tree", time.Minute, base.Add(time.Duration(i)*time.Hour))
		if err := store.Save(rec); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("List returned %d records", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].StartedAt.After(recs[i-1].StartedAt) {
			t.Fatalf("records not newest first: %v before %v", recs[i-1].StartedAt, recs[i].StartedAt)
		}
	}
}

func TestFileStoreListSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecord("tree", time.Minute, time.Now().UTC())
	if err := store.Save(rec); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600); err != nil {
		t.Fatal(err)
	}

	recs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != rec.ID {
		t.Errorf("List = %d records, want just the valid one", len(recs))
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecord("tree", time.Minute, time.Now().UTC())
	if err := store.Save(rec); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(rec.ID); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Get after Delete = %v", err)
	}

	// Deleting again is fine.
	if err := store.Delete(rec.ID); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "sessions")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if store.Dir() != dir {
		t.Errorf("Dir = %q", store.Dir())
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("store dir not created: %v", err)
	}
}
