package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newGalleryRouter(plantsDir string) http.Handler {
	r := chi.NewRouter()
	r.Get("/", handleIndex(plantsDir))
	r.Get("/preview/{variant}", handlePreview)
	r.Get("/plants", handlePlantList(plantsDir))
	r.Get("/plants/{name}", handlePlantFile(plantsDir))
	return r
}

func TestPlantListHandler(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.svg", "b.svg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	srv := httptest.NewServer(newGalleryRouter(dir))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/plants")
	if err != nil {
		t.Fatal(err)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var names []string
	if err := json.Unmarshal([]byte(readBody(t, resp)), &names); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(names) != 2 || names[0] != "a.svg" || names[1] != "b.svg" {
		t.Errorf("names = %v, want [a.svg b.svg]", names)
	}
}

func TestPlantListHandlerEmptyDir(t *testing.T) {
	srv := httptest.NewServer(newGalleryRouter(t.TempDir()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/plants")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(readBody(t, resp)); got != "[]" {
		t.Errorf("empty dir body = %q, want []", got)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestPreviewHandler(t *testing.T) {
	srv := httptest.NewServer(newGalleryRouter(t.TempDir()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/preview/orange-tree")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := readBody(t, resp)
	if !strings.Contains(body, "<svg") || !strings.Contains(body, "</svg>") {
		t.Error("response is not an SVG document")
	}
}

func TestPreviewHandlerUnknownVariant(t *testing.T) {
	srv := httptest.NewServer(newGalleryRouter(t.TempDir()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/preview/bonsai")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestPreviewHandlerBadDimensions(t *testing.T) {
	srv := httptest.NewServer(newGalleryRouter(t.TempDir()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/preview/tree?width=-5")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPlantFileHandler(t *testing.T) {
	dir := t.TempDir()
	content := `<svg xmlns="http://www.w3.org/2000/svg"></svg>`
	if err := os.WriteFile(filepath.Join(dir, "saved.svg"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(newGalleryRouter(dir))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/plants/saved.svg")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := readBody(t, resp); got != content {
		t.Errorf("body = %q", got)
	}
}

func TestPlantFileHandlerRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(newGalleryRouter(dir))
	defer srv.Close()

	for _, path := range []string{
		"/plants/%2e%2e%2fsecret.txt",
		"/plants/notes.txt",
		"/plants/missing.svg",
	} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			t.Errorf("GET %s = 200, want rejection", path)
		}
	}
}

func TestIndexListsPreviewsAndSavedPlants(t *testing.T) {
	dir := t.TempDir()
	name := "2026-08-24|14:32:01.svg"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(newGalleryRouter(dir))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	page := readBody(t, resp)

	if !strings.Contains(page, "/preview/double-green-tree") {
		t.Error("index missing variant preview links")
	}
	// Saved names contain '|', which must be percent-escaped in the href
	// but readable in the label.
	if !strings.Contains(page, `/plants/`+url.PathEscape(name)) {
		t.Error("index missing escaped saved plant link")
	}
	if !strings.Contains(page, name) {
		t.Error("index missing saved plant label")
	}
}
