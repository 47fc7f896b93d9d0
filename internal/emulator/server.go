// Package emulator implements a local stand-in for the hosted document store
// and authentication service. It speaks the same REST surface the console's
// adapters use, backed by a SQLite file, so development and integration tests
// run without a hosted project.
package emulator

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/mattn/go-sqlite3"

	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/emulator/migrations"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/models"
)

// devSigningKey signs emulator ID tokens. The console never verifies them, it
// only reads the subject claim.
var devSigningKey = []byte("trippr-emulator-dev-key")

type Handler struct {
	documents *docStore
	accounts  *accountStore

	logger *logger.Logger
}

// NewHandler opens (and migrates) the emulator database and builds the HTTP
// handler over it.
func NewHandler(cfg *config.EmulatorConfig, log *logger.Logger) (*Handler, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err = migrations.Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("db", cfg.DBPath).Msg("emulator handler created")
	return &Handler{
		documents: newDocStore(db),
		accounts:  newAccountStore(db, devSigningKey),
		logger:    log,
	}, nil
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Post("/v1/accounts/signup", h.signUp)

	router.Route("/v1/collections/{collection}", func(r chi.Router) {
		r.Get("/documents", h.list)
		r.Post("/documents", h.create)
		r.Post("/query", h.query)

		r.Route("/documents/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.set)
			r.Patch("/", h.patch)
			r.Delete("/", h.delete)
		})
	})

	return router
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documents.list(chi.URLParam(r, "collection"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rawArray(docs))
}

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid query body", http.StatusBadRequest)
		return
	}

	docs, err := h.documents.query(chi.URLParam(r, "collection"), req.Filters)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rawArray(docs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.get(chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if errors.Is(err, errDocumentNotFound) {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}

	id, err := h.documents.create(chi.URLParam(r, "collection"), body)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	response, _ := json.Marshal(map[string]string{"id": id})
	writeJSON(w, http.StatusCreated, response)
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}

	if err = h.documents.set(chi.URLParam(r, "collection"), chi.URLParam(r, "id"), body); err != nil {
		h.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}

	err = h.documents.patch(chi.URLParam(r, "collection"), chi.URLParam(r, "id"), body)
	if errors.Is(err, errDocumentNotFound) {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.documents.delete(chi.URLParam(r, "collection"), chi.URLParam(r, "id")); err != nil {
		h.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		h.authError(w, http.StatusBadRequest, "INVALID_EMAIL")
		return
	}

	id, token, err := h.accounts.signUp(req.Email, req.Password)
	switch {
	case errors.Is(err, errEmailExists), errors.Is(err, errWeakPassword):
		h.authError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.internalError(w, r, err)
		return
	}

	response, _ := json.Marshal(map[string]string{
		"localId": id,
		"email":   req.Email,
		"idToken": token,
	})
	writeJSON(w, http.StatusOK, response)
}

// authError writes the auth service's error envelope.
func (h *Handler) authError(w http.ResponseWriter, status int, message string) {
	body, _ := json.Marshal(map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": message,
		},
	})
	writeJSON(w, status, body)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Error().Err(err).Msg("emulator request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}

// rawArray renders docs as a JSON array, [] rather than null when empty.
func rawArray(docs []json.RawMessage) []byte {
	if docs == nil {
		docs = []json.RawMessage{}
	}
	body, _ := json.Marshal(docs)
	return body
}

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	size, err := w.ResponseWriter.Write(b)
	w.size += size
	return size, err
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := h.logger.WithContext(r.Context())
		r = r.WithContext(ctx)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		h.logger.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
