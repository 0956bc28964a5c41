//go:generate mockgen -source ./waitlist.go -destination=./mocks/waitlist.go -package=mock_waitlist

// Package waitlist maintains the ordered queue of users waiting for an item
// and resolves who is offered it next.
package waitlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/metrics"
	"github.com/lendery/lendery/internal/repository"
)

var (
	ErrAlreadyWaiting      = errors.New("already on waitlist")
	ErrNoActiveEntry       = errors.New("no active waitlist entry")
	ErrProfileIncomplete   = errors.New("profile requires name and phone to join waitlist")
	ErrOutsideNeighborhood = errors.New("item is outside your neighborhood")
)

type Repository interface {
	Create(ctx context.Context, entry *repository.WaitlistEntry) error
	NextEligible(ctx context.Context, itemID uuid.UUID) (*repository.WaitlistEntry, error)
	NextEligibleTx(ctx context.Context, tx db.Tx, itemID uuid.UUID) (*repository.WaitlistEntry, error)
	GetWaiting(ctx context.Context, itemID, userID uuid.UUID) (*repository.WaitlistEntry, error)
	ListWaiting(ctx context.Context, itemID uuid.UUID) ([]*repository.WaitlistEntry, error)
	Remove(ctx context.Context, itemID, userID uuid.UUID) error
	MarkFulfilledTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) error
	MarkSkippedTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) error
	CountAhead(ctx context.Context, entry *repository.WaitlistEntry) (int, error)
}

type ItemRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Item, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error)
	UpdateContact(ctx context.Context, id uuid.UUID, displayName, phone string) error
}

type Manager struct {
	entries Repository
	items   ItemRepository
	users   UserRepository
}

func NewManager(entries Repository, items ItemRepository, users UserRepository) *Manager {
	return &Manager{entries: entries, items: items, users: users}
}

// Join adds the user to the item's waitlist. A joining profile must carry
// name and phone so the holder can coordinate the handoff; values supplied
// here update the profile first.
func (m *Manager) Join(ctx context.Context, itemID, userID uuid.UUID, displayName, phone string) (*repository.WaitlistEntry, error) {
	item, err := m.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !repository.UserInItemArea(user, item) {
		return nil, ErrOutsideNeighborhood
	}

	if displayName == "" && user.DisplayName != nil {
		displayName = *user.DisplayName
	}
	if phone == "" && user.Phone != nil {
		phone = *user.Phone
	}
	if displayName == "" || phone == "" {
		return nil, ErrProfileIncomplete
	}

	if err := m.users.UpdateContact(ctx, userID, displayName, phone); err != nil {
		return nil, err
	}

	entry := &repository.WaitlistEntry{
		ID:        uuid.New(),
		ItemID:    itemID,
		UserID:    userID,
		Status:    repository.WaitlistStatusWaiting,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.entries.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyWaiting
		}
		return nil, err
	}

	metrics.WaitlistJoinsTotal.Inc()
	return entry, nil
}

func (m *Manager) Leave(ctx context.Context, itemID, userID uuid.UUID) error {
	err := m.entries.Remove(ctx, itemID, userID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return ErrNoActiveEntry
	}
	return err
}

// NextEligible returns the highest-priority waiting entry, or nil when the
// waitlist is empty. Does not mutate state.
func (m *Manager) NextEligible(ctx context.Context, itemID uuid.UUID) (*repository.WaitlistEntry, error) {
	entry, err := m.entries.NextEligible(ctx, itemID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, nil
	}
	return entry, err
}

func (m *Manager) ListWaiting(ctx context.Context, itemID uuid.UUID) ([]*repository.WaitlistEntry, error) {
	return m.entries.ListWaiting(ctx, itemID)
}

type Position struct {
	OnWaitlist bool
	AheadCount int
}

// Position reports how many waiting entries sort before the user's own,
// without exposing who they are.
func (m *Manager) Position(ctx context.Context, itemID, userID uuid.UUID) (Position, error) {
	entry, err := m.entries.GetWaiting(ctx, itemID, userID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return Position{}, nil
	}
	if err != nil {
		return Position{}, err
	}

	ahead, err := m.entries.CountAhead(ctx, entry)
	if err != nil {
		return Position{}, err
	}
	return Position{OnWaitlist: true, AheadCount: ahead}, nil
}
