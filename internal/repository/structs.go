package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrDuplicate      = errors.New("duplicate")
)

type ItemStatus string

const (
	ItemStatusAvailable  ItemStatus = "available"
	ItemStatusCheckedOut ItemStatus = "checked_out"
	ItemStatusPassing    ItemStatus = "passing"
	ItemStatusReturning  ItemStatus = "returning"
	ItemStatusInactive   ItemStatus = "inactive"
)

type TransferType string

const (
	TransferTypeCreate   TransferType = "create"
	TransferTypeCheckout TransferType = "checkout"
	TransferTypePass     TransferType = "pass"
	TransferTypeReturn   TransferType = "return"
)

type TransferStatus string

const (
	TransferStatusPendingAccept TransferStatus = "pending_accept"
	TransferStatusCompleted     TransferStatus = "completed"
	TransferStatusCancelled     TransferStatus = "cancelled"
	TransferStatusExpired       TransferStatus = "expired"
)

type WaitlistStatus string

const (
	WaitlistStatusWaiting   WaitlistStatus = "waiting"
	WaitlistStatusSkipped   WaitlistStatus = "skipped"
	WaitlistStatusFulfilled WaitlistStatus = "fulfilled"
	WaitlistStatusRemoved   WaitlistStatus = "removed"
)

type TokenPurpose string

const (
	TokenPurposeHandoffAccept TokenPurpose = "handoff_accept"
	TokenPurposeItemView      TokenPurpose = "item_view"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  *string   `db:"display_name"`
	Phone        *string   `db:"phone"`
	Neighborhood string    `db:"neighborhood"`
	CreatedAt    time.Time `db:"created_at"`
}

type Item struct {
	ID                     uuid.UUID  `db:"id"`
	OwnerID                uuid.UUID  `db:"owner_id"`
	Title                  string     `db:"title"`
	Description            string     `db:"description"`
	Category               string     `db:"category"`
	PickupArea             string     `db:"pickup_area"`
	BorrowDurationDays     int        `db:"borrow_duration_days"`
	OwnerRequestedReturnAt *time.Time `db:"owner_requested_return_at"`
	TagTokenVersion        int        `db:"tag_token_version"`
	Status                 ItemStatus `db:"status"`
	CurrentHolderID        *uuid.UUID `db:"current_holder_id"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
}

type Transfer struct {
	ID          uuid.UUID       `db:"id"`
	ItemID      uuid.UUID       `db:"item_id"`
	FromUserID  *uuid.UUID      `db:"from_user_id"`
	ToUserID    *uuid.UUID      `db:"to_user_id"`
	Type        TransferType    `db:"type"`
	Status      TransferStatus  `db:"status"`
	InitiatedAt time.Time       `db:"initiated_at"`
	AcceptedAt  *time.Time      `db:"accepted_at"`
	Metadata    json.RawMessage `db:"metadata"`
}

type Token struct {
	ID         uuid.UUID    `db:"id"`
	ItemID     uuid.UUID    `db:"item_id"`
	TransferID *uuid.UUID   `db:"transfer_id"`
	TokenHash  string       `db:"token_hash"`
	Purpose    TokenPurpose `db:"purpose"`
	ExpiresAt  *time.Time   `db:"expires_at"`
	UsedAt     *time.Time   `db:"used_at"`
	CreatedAt  time.Time    `db:"created_at"`
}

type WaitlistEntry struct {
	ID        uuid.UUID      `db:"id"`
	ItemID    uuid.UUID      `db:"item_id"`
	UserID    uuid.UUID      `db:"user_id"`
	Status    WaitlistStatus `db:"status"`
	Position  *int           `db:"position"`
	CreatedAt time.Time      `db:"created_at"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}
