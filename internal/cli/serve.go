package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/verdant-cli/verdant/pkg/canvas"
	"github.com/verdant-cli/verdant/pkg/errors"
	"github.com/verdant-cli/verdant/pkg/plant"
)

// newServeCmd creates the serve command: a local HTTP gallery of saved
// drawings plus fresh full-grown previews of every variant.
func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a local gallery of plant previews and saved drawings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}
			plantsDir, err := cfg.PlantsDir()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), addr, plantsDir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8465", "listen address")
	return cmd
}

func runServe(ctx context.Context, addr, plantsDir string) error {
	logger := loggerFromContext(ctx)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", handleIndex(plantsDir))
	r.Get("/preview/{variant}", handlePreview)
	r.Get("/plants", handlePlantList(plantsDir))
	r.Get("/plants/{name}", handlePlantFile(plantsDir))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("gallery listening", "addr", "http://"+addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve gallery: %w", err)
	}
	return nil
}

// handlePreview renders a fresh, fully grown plant of the requested
// variant. Every request generates a new shape.
func handlePreview(w http.ResponseWriter, req *http.Request) {
	kind, err := plant.ParseKind(chi.URLParam(req, "variant"))
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusNotFound)
		return
	}

	width := queryInt(req, "width", defaultCanvasSize)
	height := queryInt(req, "height", defaultCanvasSize)
	if err := errors.ValidateDimensions(width, height); err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	p, err := plant.New(kind)
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}
	if err := p.SetMaxAge(1); err == nil {
		err = p.SetAge(1)
	}

	c := canvas.New(width, height)
	if err == nil {
		err = p.Draw(c, width, height)
	}
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(c.SVG())
}

// handlePlantList returns the saved drawing names as JSON, newest name
// last (the date-keyed names sort chronologically).
func handlePlantList(plantsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		names := savedPlantNames(plantsDir)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(names)
	}
}

// savedPlantNames lists the .svg basenames in plantsDir, sorted. An
// unreadable directory yields an empty list.
func savedPlantNames(plantsDir string) []string {
	names := []string{}
	entries, err := os.ReadDir(plantsDir)
	if err != nil {
		return names
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".svg") {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

// handlePlantFile serves one saved drawing by basename.
func handlePlantFile(plantsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		if err := errors.ValidateFileName(name); err != nil {
			http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
			return
		}
		if !strings.HasSuffix(name, ".svg") {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		http.ServeFile(w, req, filepath.Join(plantsDir, name))
	}
}

// handleIndex lists variant previews and saved drawings as a plain HTML
// page.
func handleIndex(plantsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var b strings.Builder
		b.WriteString("<!doctype html><title>Verdant</title><h1>Verdant</h1>")

		b.WriteString("<h2>Previews</h2><ul>")
		for _, k := range plant.Kinds() {
			fmt.Fprintf(&b, `<li><a href="/preview/%s">%s</a></li>`, k, k)
		}
		b.WriteString("</ul>")

		b.WriteString("<h2>Saved plants</h2><ul>")
		for _, name := range savedPlantNames(plantsDir) {
			fmt.Fprintf(&b, `<li><a href="/plants/%s">%s</a></li>`,
				url.PathEscape(name), html.EscapeString(name))
		}
		b.WriteString("</ul>")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, b.String())
	}
}

func queryInt(req *http.Request, key string, fallback int) int {
	if s := req.URL.Query().Get(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}
