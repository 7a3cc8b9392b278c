package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/lexicloud/pkg/errors"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= 500 {
		loggerFrom(r.Context()).Error("request failed", "err", err)
	} else {
		loggerFrom(r.Context()).Debug("request rejected", "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type registerResponse struct {
	Place       string `json:"place"`
	Backfilling bool   `json:"backfilling"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	place := chi.URLParam(r, "place")
	backfilling, err := s.svc.RegisterPlace(r.Context(), place)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if backfilling {
		status = http.StatusAccepted
	}
	writeJSON(w, status, registerResponse{Place: place, Backfilling: backfilling})
}

type ingestRequest struct {
	Place  string `json:"place"`
	Person string `json:"person"`
	Text   string `json:"text"`
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed message body"))
		return
	}
	if err := s.svc.IngestMessage(r.Context(), req.Place, req.Person, req.Text); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	person := chi.URLParam(r, "person")
	accent := r.URL.Query().Get("accent")
	data, err := s.svc.CloudPNG(r.Context(), person, accent)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleEmojis(w http.ResponseWriter, r *http.Request) {
	place := chi.URLParam(r, "place")
	board, err := s.svc.EmojiRanking(place)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(board))
}
