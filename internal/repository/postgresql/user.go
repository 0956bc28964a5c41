package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, display_name, phone, neighborhood, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, strings.ToLower(user.Email), string(hashedPassword), user.DisplayName,
		user.Phone, user.Neighborhood, user.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE lower(email) = $1", strings.ToLower(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate resolves basic-auth credentials to a user. Returns
// ErrObjectNotFound for both unknown email and wrong password.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (*repository.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, repository.ErrObjectNotFound
	}
	return user, nil
}

func (r *UserRepo) UpdateContact(ctx context.Context, id uuid.UUID, displayName, phone string) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users
        SET display_name = $1, phone = $2
        WHERE id = $3
    `, displayName, phone, id)
	return err
}
