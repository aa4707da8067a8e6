package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/perttu/prefstore/internal/settings"
)

const maxBodySize = 1 << 16 // 64KB, settings payloads are tiny

// SetRequest is the body of PUT /settings/{name}. Value must match the
// setting's declared type: JSON bool for bool settings, JSON number for int
// and float settings.
type SetRequest struct {
	Value json.RawMessage `json:"value"`
}

// NewHandler builds the local debug HTTP API over a settings service. It is
// meant to be served on loopback for tooling, not exposed.
func NewHandler(svc settings.Service) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)
	r.Get("/settings", handleList(svc))
	r.Get("/settings/{name}", handleGet(svc))
	r.Put("/settings/{name}", handleSet(svc))
	r.Post("/settings/save", handleSave(svc))
	r.Post("/settings/reset", handleReset(svc))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleList(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Effective())
	}
}

func handleGet(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		kind, ok := settings.TypeOf(name)
		if !ok {
			httpError(w, http.StatusNotFound, "unknown_setting", "unknown setting %q", name)
			return
		}

		var value any
		switch kind {
		case settings.KindBool:
			value = svc.GetBool(name)
		case settings.KindInt:
			value = svc.GetInt(name)
		case settings.KindFloat:
			value = svc.GetFloat(name)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"name":  name,
			"type":  kind.String(),
			"value": value,
		})
	}
}

func handleSet(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		kind, ok := settings.TypeOf(name)
		if !ok {
			httpError(w, http.StatusNotFound, "unknown_setting", "unknown setting %q", name)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		defer r.Body.Close()

		var req SetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if len(req.Value) == 0 {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "value is required")
			return
		}

		if err := applyValue(svc, name, kind, req.Value); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
			return
		}

		handleGet(svc)(w, r)
	}
}

func applyValue(svc settings.Service, name string, kind settings.Kind, raw json.RawMessage) error {
	switch kind {
	case settings.KindBool:
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%s expects a boolean value", name)
		}
		svc.SetBool(name, v)
	case settings.KindInt:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil || v != math.Trunc(v) {
			return fmt.Errorf("%s expects an integer value", name)
		}
		svc.SetInt(name, int(v))
	case settings.KindFloat:
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%s expects a number value", name)
		}
		svc.SetFloat(name, v)
	}
	return nil
}

func handleSave(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Save()
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "saving"})
	}
}

func handleReset(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ResetToDefaults()
		svc.Save()
		writeJSON(w, http.StatusOK, svc.Effective())
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
