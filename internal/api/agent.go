package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starford/ansuz/internal/agent"
)

// AgentHandler holds the agent route handlers.
type AgentHandler struct {
	svc *agent.Service
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(svc *agent.Service) *AgentHandler {
	return &AgentHandler{svc: svc}
}

func (h *AgentHandler) decodeQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req AgentQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return "", false
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return "", false
	}
	return req.Query, true
}

// Ask handles POST /agent/ask.
func (h *AgentHandler) Ask(w http.ResponseWriter, r *http.Request) {
	query, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}
	result, err := h.svc.Ask(r.Context(), query)
	if err != nil {
		slog.Error("agent query failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AskStream handles POST /agent/ask/stream. Events are written as
// newline-delimited JSON, one object per line, flushed as they are produced;
// the body ends after the final event.
func (h *AgentHandler) AskStream(w http.ResponseWriter, r *http.Request) {
	query, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorBody("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	enc := json.NewEncoder(w)
	for ev := range h.svc.AskStream(r.Context(), query) {
		if err := enc.Encode(ev); err != nil {
			// Client gone; the request context cancellation stops the producer.
			return
		}
		flusher.Flush()
	}
}
