// Package notify carries handoff notices out of the engine. Delivery is
// best-effort: the engine reports a failed notice as a warning on an
// otherwise-successful result and never rolls back for it.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/repository"
)

const (
	TopicHandoffNotices = "handoff_notices"
)

type HandoffNotice struct {
	TransferID     uuid.UUID
	ItemID         uuid.UUID
	ItemTitle      string
	Type           repository.TransferType
	SenderName     string
	RecipientID    uuid.UUID
	RecipientEmail string
	Secret         string
	TTLHours       int
}

type ReturnRequestNotice struct {
	ItemID      uuid.UUID
	ItemTitle   string
	OwnerName   string
	HolderID    uuid.UUID
	HolderEmail string
}

type noticePayload struct {
	Kind           string    `json:"kind"`
	SentAt         time.Time `json:"sent_at"`
	TransferID     string    `json:"transfer_id,omitempty"`
	ItemID         string    `json:"item_id"`
	ItemTitle      string    `json:"item_title"`
	TransferType   string    `json:"transfer_type,omitempty"`
	SenderName     string    `json:"sender_name,omitempty"`
	RecipientEmail string    `json:"recipient_email"`
	AcceptLink     string    `json:"accept_link,omitempty"`
	SkipLink       string    `json:"skip_link,omitempty"`
	ItemLink       string    `json:"item_link,omitempty"`
	TTLHours       int       `json:"ttl_hours,omitempty"`
}

type OutboxTaskRepository interface {
	Create(ctx context.Context, database db.DB, task *repository.OutboxTask) error
}

// OutboxNotifier persists notices as outbox tasks; a separate publisher loop
// drains them to the broker and the consumer process handles actual delivery.
type OutboxNotifier struct {
	db      db.DB
	repo    OutboxTaskRepository
	baseURL string
}

func NewOutboxNotifier(database db.DB, repo OutboxTaskRepository, baseURL string) *OutboxNotifier {
	return &OutboxNotifier{db: database, repo: repo, baseURL: baseURL}
}

func (n *OutboxNotifier) HandoffOffered(ctx context.Context, notice HandoffNotice) error {
	payload := noticePayload{
		Kind:           "handoff_offered",
		SentAt:         time.Now().UTC(),
		TransferID:     notice.TransferID.String(),
		ItemID:         notice.ItemID.String(),
		ItemTitle:      notice.ItemTitle,
		TransferType:   string(notice.Type),
		SenderName:     notice.SenderName,
		RecipientEmail: notice.RecipientEmail,
		TTLHours:       notice.TTLHours,
	}

	if notice.Secret != "" {
		query := "?token=" + url.QueryEscape(notice.Secret)
		payload.AcceptLink = fmt.Sprintf("%s/transfers/%s/accept%s", n.baseURL, notice.TransferID, query)
		if notice.Type == repository.TransferTypePass {
			payload.SkipLink = fmt.Sprintf("%s/transfers/%s/skip%s", n.baseURL, notice.TransferID, query)
		}
	} else {
		payload.ItemLink = fmt.Sprintf("%s/items/%s", n.baseURL, notice.ItemID)
	}

	return n.enqueue(ctx, payload)
}

func (n *OutboxNotifier) ReturnRequested(ctx context.Context, notice ReturnRequestNotice) error {
	return n.enqueue(ctx, noticePayload{
		Kind:           "return_requested",
		SentAt:         time.Now().UTC(),
		ItemID:         notice.ItemID.String(),
		ItemTitle:      notice.ItemTitle,
		SenderName:     notice.OwnerName,
		RecipientEmail: notice.HolderEmail,
		ItemLink:       fmt.Sprintf("%s/items/%s", n.baseURL, notice.ItemID),
	})
}

func (n *OutboxNotifier) enqueue(ctx context.Context, payload noticePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notice payload: %w", err)
	}

	task := &repository.OutboxTask{
		Topic:   TopicHandoffNotices,
		Payload: raw,
	}
	return n.repo.Create(ctx, n.db, task)
}
