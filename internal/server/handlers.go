// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pdiddy/brand-engine/internal/logging"
	"github.com/pdiddy/brand-engine/pkg/types"
)

// analysisRequest is the body of the recommendation and classification
// endpoints. An empty analysis is valid and yields the default record.
type analysisRequest struct {
	Analysis    string `json:"analysis"`
	DisplayName string `json:"displayName"`
}

type presetList struct {
	Presets []types.Preset `json:"presets"`
}

type promptResponse struct {
	Prompt string `json:"prompt"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalysis(w, r)
	if !ok {
		return
	}
	rec := s.engine.Recommend(req.Analysis, req.DisplayName)
	logging.FromContext(r.Context()).Debug("recommended",
		zap.String("industry", string(rec.Analysis.Industry)),
		zap.Int("presets", len(rec.Presets)),
	)
	writeJSON(w, r, http.StatusOK, rec)
}

func (s *Server) classifications(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeAnalysis(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, s.engine.Classify(req.Analysis))
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, presetList{Presets: s.engine.Tables().Catalog})
}

func (s *Server) getPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.engine.Tables().Preset(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, codeNotFound, fmt.Sprintf("unknown preset %q", id))
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}

func (s *Server) prompt(w http.ResponseWriter, r *http.Request) {
	text, err := s.engine.Prompt(r.URL.Query().Get("brand"))
	if err != nil {
		logging.FromContext(r.Context()).Error("rendering prompt", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, codeInternal, "rendering prompt failed")
		return
	}
	writeJSON(w, r, http.StatusOK, promptResponse{Prompt: text})
}

// decodeAnalysis reads a JSON analysisRequest and writes the error response
// itself when the body is unusable.
func (s *Server) decodeAnalysis(w http.ResponseWriter, r *http.Request) (analysisRequest, bool) {
	var req analysisRequest

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			writeError(w, r, http.StatusUnsupportedMediaType, codeUnsupportedMedia, "content type must be application/json")
			return req, false
		}
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, r, http.StatusRequestEntityTooLarge, codeTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		case errors.Is(err, io.EOF):
			writeError(w, r, http.StatusBadRequest, codeBadRequest, "request body is empty")
		default:
			writeError(w, r, http.StatusBadRequest, codeBadRequest, fmt.Sprintf("invalid request body: %v", err))
		}
		return req, false
	}
	if dec.More() {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "request body must hold a single JSON object")
		return req, false
	}
	return req, true
}
