// Package server exposes painting over HTTP. Every request paints on its own
// session, so concurrent requests never share random state.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/algoart/internal/algorithm"
	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/config"
	"github.com/san-kum/algoart/internal/export"
	"github.com/san-kum/algoart/internal/painting"
	"github.com/san-kum/algoart/internal/palette"
	"github.com/san-kum/algoart/internal/storage"
)

// Server routes painting requests. Store is optional; without it the gallery
// endpoints answer 404.
type Server struct {
	registry *algorithm.Registry
	store    *storage.Store
	mux      *http.ServeMux
}

func New(store *storage.Store) *Server {
	s := &Server{
		registry: algorithm.NewRegistry(),
		store:    store,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.index)
	s.mux.HandleFunc("GET /algorithms", s.algorithms)
	s.mux.HandleFunc("GET /paint/{algorithm}", s.paint)
	s.mux.HandleFunc("GET /paintings", s.paintings)
	s.mux.HandleFunc("GET /paintings/{name}", s.saved)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	painting.Logger().Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"elapsed", time.Since(start),
	)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	painting.Logger().Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("algoart\n\n")
	for _, info := range s.registry.List() {
		if info.Legacy {
			continue
		}
		fmt.Fprintf(&b, "  /paint/%-22s %s\n", info.Name, info.Description)
	}
	b.WriteString("\nquery: seed, height, width, format (png|jpeg|bmp|tiff|svg), palette\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(b.String()))
}

func (s *Server) algorithms(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.registry.List())
}

func (s *Server) paint(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("algorithm")
	cfg, format, err := s.parseQuery(name, r)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}

	sess, err := painting.NewWithRegistry(s.registry, cfg)
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	res, err := sess.Paint(r.Context())
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.%s"`, res.Name, format.Extension()))
	w.Header().Set("X-Painting-Seed", strconv.FormatInt(res.Seed, 10))
	if err := export.Encode(w, res.Canvas, format); err != nil {
		painting.Logger().Error("encode failed", "name", res.Name, "err", err)
	}
}

func (s *Server) paintings(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	list, err := s.store.List()
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(w, http.StatusOK, list)
}

func (s *Server) saved(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	meta, err := s.store.Load(r.PathValue("name"))
	if err != nil {
		jsonError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", meta.Format.ContentType())
	http.ServeFile(w, r, s.store.Path(meta))
}

func (s *Server) parseQuery(name string, r *http.Request) (painting.Config, export.Format, error) {
	cfg := painting.DefaultConfig(name)
	q := r.URL.Query()

	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, "", badRequest("seed: %v", err)
		}
		cfg.Seed = painting.Seed(seed)
	}

	var err error
	if cfg.Height, err = dimension(q.Get("height"), cfg.Height); err != nil {
		return cfg, "", badRequest("height: %v", err)
	}
	if cfg.Width, err = dimension(q.Get("width"), cfg.Width); err != nil {
		return cfg, "", badRequest("width: %v", err)
	}

	format := export.PNG
	if v := q.Get("format"); v != "" {
		if format, err = export.ParseFormat(v); err != nil {
			return cfg, "", badRequest("%v", err)
		}
	}

	if v := q.Get("palette"); v != "" {
		p, err := palette.Get(v)
		if err != nil {
			return cfg, "", badRequest("%v", err)
		}
		cfg.Params.Palette = p
	}

	return cfg, format, nil
}

// dimension parses a size parameter. Zero and negative values are left for
// the canvas to reject so the error names the offending size.
func dimension(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n > config.MaxDimension {
		return 0, fmt.Errorf("%d exceeds %d", n, config.MaxDimension)
	}
	return n, nil
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

func statusFor(err error) int {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		return http.StatusBadRequest
	case errors.Is(err, algorithm.ErrUnknownAlgorithm), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, canvas.ErrInvalidDimensions), errors.Is(err, storage.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return 499
	}
	return http.StatusInternalServerError
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func jsonError(w http.ResponseWriter, status int, err error) {
	jsonResponse(w, status, map[string]string{"error": err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
