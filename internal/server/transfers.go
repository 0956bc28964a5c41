package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var checkoutRequest struct {
		RecipientID uuid.UUID `json:"recipient_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&checkoutRequest); err != nil || checkoutRequest.RecipientID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "Missing recipient_id")
		return
	}

	result, err := s.engine.Checkout(r.Context(), currentUser(r).ID, itemID, checkoutRequest.RecipientID)
	if err != nil {
		s.respondEngineError(w, r, "checkout", err)
		return
	}

	respondJSON(w, http.StatusCreated, newHandoffView(result))
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	// recipient_id is optional: without it the engine resolves the next
	// recipient itself.
	var passRequest struct {
		RecipientID *uuid.UUID `json:"recipient_id"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&passRequest); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	// The global sweep rides on pass traffic; a failed sweep never blocks the
	// pass itself, which re-checks its own item under lock anyway.
	if _, err := s.engine.ExpireStale(r.Context(), time.Now().UTC()); err != nil {
		s.logger.Warn("Stale transfer sweep failed", zap.Error(err))
	}

	result, err := s.engine.Pass(r.Context(), currentUser(r).ID, itemID, passRequest.RecipientID)
	if err != nil {
		s.respondEngineError(w, r, "pass", err)
		return
	}

	respondJSON(w, http.StatusCreated, newHandoffView(result))
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	result, err := s.engine.Return(r.Context(), currentUser(r).ID, itemID)
	if err != nil {
		s.respondEngineError(w, r, "return", err)
		return
	}

	respondJSON(w, http.StatusCreated, newHandoffView(result))
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	result, err := s.engine.CheckIn(r.Context(), currentUser(r).ID, itemID)
	if err != nil {
		s.respondEngineError(w, r, "checkin", err)
		return
	}

	respondJSON(w, http.StatusOK, newAcceptView(result))
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var claimRequest struct {
		TagToken string `json:"tag_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&claimRequest); err != nil || claimRequest.TagToken == "" {
		respondError(w, http.StatusBadRequest, "Missing tag_token")
		return
	}

	result, err := s.engine.ClaimViaTag(r.Context(), currentUser(r).ID, itemID, claimRequest.TagToken)
	if err != nil {
		s.respondEngineError(w, r, "claim", err)
		return
	}

	respondJSON(w, http.StatusOK, newAcceptView(result))
}

func (s *Server) handleAssignHolder(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var assignRequest struct {
		RecipientID uuid.UUID `json:"recipient_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&assignRequest); err != nil || assignRequest.RecipientID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "Missing recipient_id")
		return
	}

	result, err := s.engine.AssignHolder(r.Context(), currentUser(r).ID, itemID, assignRequest.RecipientID)
	if err != nil {
		s.respondEngineError(w, r, "assign_holder", err)
		return
	}

	respondJSON(w, http.StatusOK, newAcceptView(result))
}

func (s *Server) handleRequestReturn(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, warning, err := s.engine.RequestReturn(r.Context(), currentUser(r).ID, itemID)
	if err != nil {
		s.respondEngineError(w, r, "request_return", err)
		return
	}

	response := map[string]interface{}{"item": newItemView(item)}
	if warning != "" {
		response["warning"] = warning
	}
	respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := s.engine.Deactivate(r.Context(), currentUser(r).ID, itemID)
	if err != nil {
		s.respondEngineError(w, r, "deactivate", err)
		return
	}

	respondJSON(w, http.StatusOK, newItemView(item))
}

func (s *Server) handleReactivate(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := s.engine.Reactivate(r.Context(), currentUser(r).ID, itemID)
	if err != nil {
		s.respondEngineError(w, r, "activate", err)
		return
	}

	respondJSON(w, http.StatusOK, newItemView(item))
}

// acceptSecret reads the handoff secret from the body or, for emailed links,
// from the query string.
func acceptSecret(r *http.Request) string {
	var secretRequest struct {
		Token string `json:"token"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&secretRequest); err == nil && secretRequest.Token != "" {
			return secretRequest.Token
		}
	}
	return r.URL.Query().Get("token")
}

func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	transferID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid transfer ID")
		return
	}

	result, err := s.engine.Accept(r.Context(), currentUser(r).ID, transferID, acceptSecret(r))
	if err != nil {
		s.respondEngineError(w, r, "accept", err)
		return
	}

	respondJSON(w, http.StatusOK, newAcceptView(result))
}

func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	transferID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid transfer ID")
		return
	}

	transfer, err := s.engine.Skip(r.Context(), currentUser(r).ID, transferID, acceptSecret(r))
	if err != nil {
		s.respondEngineError(w, r, "skip", err)
		return
	}

	respondJSON(w, http.StatusOK, newTransferView(transfer))
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	transferID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid transfer ID")
		return
	}

	transfer, err := s.engine.Cancel(r.Context(), currentUser(r).ID, transferID)
	if err != nil {
		s.respondEngineError(w, r, "cancel", err)
		return
	}

	respondJSON(w, http.StatusOK, newTransferView(transfer))
}
