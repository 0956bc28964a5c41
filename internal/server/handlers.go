package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lendery/lendery/internal/repository"
)

const defaultBorrowDurationDays = 7

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var registerRequest struct {
		Email        string `json:"email"`
		Password     string `json:"password"`
		DisplayName  string `json:"display_name"`
		Phone        string `json:"phone"`
		Neighborhood string `json:"neighborhood"`
	}

	if err := json.NewDecoder(r.Body).Decode(&registerRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if registerRequest.Email == "" || !strings.Contains(registerRequest.Email, "@") {
		respondError(w, http.StatusBadRequest, "Invalid email")
		return
	}
	if len(registerRequest.Password) < 8 {
		respondError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	user := &repository.User{
		ID:           uuid.New(),
		Email:        registerRequest.Email,
		Neighborhood: repository.NormalizeArea(registerRequest.Neighborhood),
		CreatedAt:    time.Now().UTC(),
	}
	if registerRequest.DisplayName != "" {
		user.DisplayName = &registerRequest.DisplayName
	}
	if registerRequest.Phone != "" {
		user.Phone = &registerRequest.Phone
	}

	if err := s.users.Create(r.Context(), user, registerRequest.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		s.respondEngineError(w, r, "register", err)
		return
	}

	respondJSON(w, http.StatusCreated, newUserView(user))
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newUserView(currentUser(r)))
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var itemRequest struct {
		Title              string `json:"title"`
		Description        string `json:"description"`
		Category           string `json:"category"`
		PickupArea         string `json:"pickup_area"`
		BorrowDurationDays int    `json:"borrow_duration_days"`
	}

	if err := json.NewDecoder(r.Body).Decode(&itemRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if itemRequest.Title == "" {
		respondError(w, http.StatusBadRequest, "Missing title")
		return
	}
	if itemRequest.BorrowDurationDays <= 0 {
		itemRequest.BorrowDurationDays = defaultBorrowDurationDays
	}

	user := currentUser(r)
	now := time.Now().UTC()
	item := &repository.Item{
		ID:                 uuid.New(),
		OwnerID:            user.ID,
		Title:              itemRequest.Title,
		Description:        itemRequest.Description,
		Category:           itemRequest.Category,
		PickupArea:         repository.NormalizeArea(itemRequest.PickupArea),
		BorrowDurationDays: itemRequest.BorrowDurationDays,
		TagTokenVersion:    1,
		Status:             repository.ItemStatusAvailable,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.items.Create(r.Context(), item); err != nil {
		s.respondEngineError(w, r, "create_item", err)
		return
	}

	respondJSON(w, http.StatusCreated, newItemView(item))
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := s.items.GetByID(r.Context(), itemID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		respondError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		s.respondEngineError(w, r, "get_item", err)
		return
	}

	respondJSON(w, http.StatusOK, newItemView(item))
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.GetByOwnerID(r.Context(), currentUser(r).ID)
	if err != nil {
		s.respondEngineError(w, r, "list_items", err)
		return
	}

	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item))
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleItemTransfers(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := s.items.GetByID(r.Context(), itemID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		respondError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		s.respondEngineError(w, r, "item_transfers", err)
		return
	}
	if item.OwnerID != currentUser(r).ID {
		respondError(w, http.StatusForbidden, "only the item owner can view transfer history")
		return
	}

	transfers, err := s.transfers.GetByItemID(r.Context(), itemID)
	if err != nil {
		s.respondEngineError(w, r, "item_transfers", err)
		return
	}

	views := make([]transferView, 0, len(transfers))
	for _, t := range transfers {
		views = append(views, newTransferView(t))
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleTagToken(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	tag, err := s.engine.TagToken(r.Context(), currentUser(r).ID, itemID)
	if err != nil {
		s.respondEngineError(w, r, "tag_token", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"tag_token": tag})
}

func (s *Server) handleRotateTag(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	tag, err := s.engine.RotateTag(r.Context(), currentUser(r).ID, itemID)
	if err != nil {
		s.respondEngineError(w, r, "rotate_tag", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"tag_token": tag})
}
