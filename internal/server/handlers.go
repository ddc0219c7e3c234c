package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jeffreywbertke/DC/internal/chart"
	"github.com/jeffreywbertke/DC/internal/circuit"
	"github.com/jeffreywbertke/DC/internal/practice"
	"github.com/jeffreywbertke/DC/internal/schematic"
)

// Response helpers

type apiResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Error: &apiError{Code: code, Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode error response", zap.Error(err))
	}
}

// decodeBody decodes an optional JSON body into v. An empty body leaves v
// untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Views

type sessionView struct {
	ID       string           `json:"id"`
	Topology circuit.Topology `json:"topology"`
	Round    roundView        `json:"round"`
	Stats    practice.Stats   `json:"stats"`
}

// roundView is a Round with the solution withheld until the learner has
// answered.
type roundView struct {
	ID          string                `json:"id"`
	Circuit     circuit.Circuit       `json:"circuit"`
	Target      circuit.Target        `json:"target"`
	Unit        string                `json:"unit"`
	Question    string                `json:"question"`
	Answer      string                `json:"answer,omitempty"`
	Feedback    *circuit.Feedback     `json:"feedback,omitempty"`
	Result      *circuit.SolvedResult `json:"result,omitempty"`
	Explanation string                `json:"explanation,omitempty"`
	Explaining  bool                  `json:"explaining"`
}

func newSessionView(id string, sess *practice.Session) sessionView {
	round := sess.Round()
	rv := roundView{
		ID:          round.ID,
		Circuit:     round.Problem.Circuit,
		Target:      round.Problem.Target,
		Unit:        round.Problem.Target.Unit(),
		Question:    round.Question(),
		Answer:      round.Answer,
		Feedback:    round.Feedback,
		Explanation: round.Explanation,
		Explaining:  round.Explaining,
	}
	if round.Answered() {
		result := round.Problem.Result
		rv.Result = &result
	}
	return sessionView{
		ID:       id,
		Topology: sess.Topology(),
		Round:    rv,
		Stats:    sess.Stats(),
	}
}

// Health

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"time":     time.Now().UTC().Format(time.RFC3339),
		"sessions": s.sessions.Len(),
	})
}

// Session handlers

type createSessionRequest struct {
	Topology string  `json:"topology"`
	Seed     *uint64 `json:"seed"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	topology := circuit.Series
	if req.Topology != "" {
		t, err := circuit.ParseTopology(req.Topology)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		topology = t
	}

	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	sess := practice.New(topology, circuit.NewSeededSource(seed))
	id := s.sessions.Add(sess)

	s.logger.Debug("session created", zap.String("id", id), zap.Stringer("topology", topology))
	s.respondJSON(w, http.StatusCreated, newSessionView(id, sess))
}

// session resolves the {id} URL parameter, writing a 404 when it is unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (string, *practice.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, ok := s.sessions.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "session_not_found", "session not found")
		return id, nil, false
	}
	return id, sess, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, newSessionView(id, sess))
}

type newProblemRequest struct {
	Topology string `json:"topology"`
}

func (s *Server) handleNewProblem(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req newProblemRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Topology == "" {
		sess.NewProblem()
	} else {
		t, err := circuit.ParseTopology(req.Topology)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		sess.SetTopology(t)
	}

	s.respondJSON(w, http.StatusOK, newSessionView(id, sess))
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if _, ok := sess.Submit(req.Answer); !ok {
		s.respondError(w, http.StatusBadRequest, "validation_error", "answer is required")
		return
	}

	s.respondJSON(w, http.StatusOK, newSessionView(id, sess))
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	id, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	roundID, problem := sess.BeginExplain()
	text := s.explainer.Explain(r.Context(), problem)
	if !sess.SetExplanation(roundID, text) {
		s.respondError(w, http.StatusConflict, "stale_round", "the problem changed while the explanation was running")
		return
	}

	s.respondJSON(w, http.StatusOK, newSessionView(id, sess))
}

func (s *Server) handleSchematic(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	c := sess.Round().Problem.Circuit
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, schematic.Render(c))
	io.WriteString(w, "\n"+schematic.Summarize(c).String()+"\n")
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.WriteIV(&buf, sess.Round().Problem, "png"); err != nil {
		s.logger.Error("failed to render chart", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "internal_error", "failed to render chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
