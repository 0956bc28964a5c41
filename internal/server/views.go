package server

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/lendery/lendery/internal/engine"
	"github.com/lendery/lendery/internal/repository"
)

type userView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  *string   `json:"display_name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Neighborhood string    `json:"neighborhood"`
	CreatedAt    time.Time `json:"created_at"`
}

func newUserView(u *repository.User) userView {
	return userView{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		Phone:        u.Phone,
		Neighborhood: u.Neighborhood,
		CreatedAt:    u.CreatedAt,
	}
}

type itemView struct {
	ID                     uuid.UUID             `json:"id"`
	OwnerID                uuid.UUID             `json:"owner_id"`
	Title                  string                `json:"title"`
	Description            string                `json:"description,omitempty"`
	Category               string                `json:"category,omitempty"`
	PickupArea             string                `json:"pickup_area"`
	BorrowDurationDays     int                   `json:"borrow_duration_days"`
	Status                 repository.ItemStatus `json:"status"`
	CurrentHolderID        *uuid.UUID            `json:"current_holder_id,omitempty"`
	OwnerRequestedReturnAt *time.Time            `json:"owner_requested_return_at,omitempty"`
	CreatedAt              time.Time             `json:"created_at"`
	UpdatedAt              time.Time             `json:"updated_at"`
}

func newItemView(i *repository.Item) itemView {
	return itemView{
		ID:                     i.ID,
		OwnerID:                i.OwnerID,
		Title:                  i.Title,
		Description:            i.Description,
		Category:               i.Category,
		PickupArea:             i.PickupArea,
		BorrowDurationDays:     i.BorrowDurationDays,
		Status:                 i.Status,
		CurrentHolderID:        i.CurrentHolderID,
		OwnerRequestedReturnAt: i.OwnerRequestedReturnAt,
		CreatedAt:              i.CreatedAt,
		UpdatedAt:              i.UpdatedAt,
	}
}

type transferView struct {
	ID          uuid.UUID                 `json:"id"`
	ItemID      uuid.UUID                 `json:"item_id"`
	FromUserID  *uuid.UUID                `json:"from_user_id,omitempty"`
	ToUserID    *uuid.UUID                `json:"to_user_id,omitempty"`
	Type        repository.TransferType   `json:"type"`
	Status      repository.TransferStatus `json:"status"`
	InitiatedAt time.Time                 `json:"initiated_at"`
	AcceptedAt  *time.Time                `json:"accepted_at,omitempty"`
	Metadata    json.RawMessage           `json:"metadata,omitempty"`
}

func newTransferView(t *repository.Transfer) transferView {
	return transferView{
		ID:          t.ID,
		ItemID:      t.ItemID,
		FromUserID:  t.FromUserID,
		ToUserID:    t.ToUserID,
		Type:        t.Type,
		Status:      t.Status,
		InitiatedAt: t.InitiatedAt,
		AcceptedAt:  t.AcceptedAt,
		Metadata:    t.Metadata,
	}
}

type handoffView struct {
	Transfer transferView `json:"transfer"`
	Item     itemView     `json:"item"`
	Secret   string       `json:"secret,omitempty"`
	Warning  string       `json:"warning,omitempty"`
}

func newHandoffView(res *engine.HandoffResult) handoffView {
	return handoffView{
		Transfer: newTransferView(res.Transfer),
		Item:     newItemView(res.Item),
		Secret:   res.Secret,
		Warning:  res.Warning,
	}
}

type acceptView struct {
	Transfer *transferView `json:"transfer,omitempty"`
	Item     itemView      `json:"item"`
}

func newAcceptView(res *engine.AcceptResult) acceptView {
	view := acceptView{Item: newItemView(res.Item)}
	if res.Transfer != nil {
		t := newTransferView(res.Transfer)
		view.Transfer = &t
	}
	return view
}

type waitlistEntryView struct {
	ID        uuid.UUID                 `json:"id"`
	ItemID    uuid.UUID                 `json:"item_id"`
	Status    repository.WaitlistStatus `json:"status"`
	CreatedAt time.Time                 `json:"created_at"`
}

func newWaitlistEntryView(e *repository.WaitlistEntry) waitlistEntryView {
	return waitlistEntryView{
		ID:        e.ID,
		ItemID:    e.ItemID,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}
