package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lendery/lendery/internal/repository"
	"github.com/lendery/lendery/internal/waitlist"
)

func (s *Server) handleJoinWaitlist(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var joinRequest struct {
		DisplayName string `json:"display_name"`
		Phone       string `json:"phone"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&joinRequest); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	entry, err := s.waitlist.Join(r.Context(), itemID, currentUser(r).ID, joinRequest.DisplayName, joinRequest.Phone)
	if err != nil {
		s.respondWaitlistError(w, r, "waitlist_join", err)
		return
	}

	respondJSON(w, http.StatusCreated, newWaitlistEntryView(entry))
}

func (s *Server) handleLeaveWaitlist(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := s.waitlist.Leave(r.Context(), itemID, currentUser(r).ID); err != nil {
		s.respondWaitlistError(w, r, "waitlist_leave", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Left the waitlist"})
}

func (s *Server) handleWaitlistPosition(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	position, err := s.waitlist.Position(r.Context(), itemID, currentUser(r).ID)
	if err != nil {
		s.respondWaitlistError(w, r, "waitlist_position", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"on_waitlist": position.OnWaitlist,
		"ahead_count": position.AheadCount,
	})
}

func (s *Server) respondWaitlistError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, waitlist.ErrAlreadyWaiting):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, waitlist.ErrNoActiveEntry):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, waitlist.ErrProfileIncomplete):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, waitlist.ErrOutsideNeighborhood):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "item not found")
	default:
		s.respondEngineError(w, r, operation, err)
	}
}
