package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sw33tLie/bocheck/pkg/failure"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Ctl.Snapshot(r.Context(), true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Page(snap).Render(w); err != nil {
		s.logErrorf("Rendering index: %v", err)
	}
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	if err := s.Ctl.SelectProject(r.FormValue("project")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if _, err := s.Ctl.Toggle(r.Context(), r.FormValue("code")); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	err := s.Ctl.Start(r.FormValue("campaigns"), r.FormValue("percentage"))
	if err != nil {
		if errors.Is(err, ErrBusy) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		s.logErrorf("Start rejected: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.Ctl.Clear()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type statusResponse struct {
	Project      string `json:"project"`
	Running      bool   `json:"running"`
	State        string `json:"state"`
	Tables       int    `json:"tables"`
	ClearVisible bool   `json:"clear_visible"`
	Error        string `json:"error,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Ctl.Snapshot(r.Context(), false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statusResponse{
		Project:      snap.Project,
		Running:      snap.Busy,
		State:        snap.State,
		Tables:       len(snap.Tables),
		ClearVisible: snap.ClearVisible,
		Error:        snap.Error,
	})
}

func statusFor(err error) int {
	if failure.Is(err, failure.UserInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) logErrorf(format string, args ...interface{}) {
	if s.Log != nil {
		s.Log.Errorf(format, args...)
	}
}
