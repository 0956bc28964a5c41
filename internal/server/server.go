//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lendery/lendery/internal/engine"
	"github.com/lendery/lendery/internal/metrics"
	"github.com/lendery/lendery/internal/repository"
	"github.com/lendery/lendery/internal/waitlist"
)

type Engine interface {
	Checkout(ctx context.Context, actorID, itemID, recipientID uuid.UUID) (*engine.HandoffResult, error)
	Pass(ctx context.Context, actorID, itemID uuid.UUID, recipientID *uuid.UUID) (*engine.HandoffResult, error)
	Return(ctx context.Context, actorID, itemID uuid.UUID) (*engine.HandoffResult, error)
	Accept(ctx context.Context, actorID, transferID uuid.UUID, secret string) (*engine.AcceptResult, error)
	Skip(ctx context.Context, actorID, transferID uuid.UUID, secret string) (*repository.Transfer, error)
	Cancel(ctx context.Context, actorID, transferID uuid.UUID) (*repository.Transfer, error)
	AssignHolder(ctx context.Context, actorID, itemID, recipientID uuid.UUID) (*engine.AcceptResult, error)
	ClaimViaTag(ctx context.Context, actorID, itemID uuid.UUID, tag string) (*engine.AcceptResult, error)
	CheckIn(ctx context.Context, actorID, itemID uuid.UUID) (*engine.AcceptResult, error)
	RequestReturn(ctx context.Context, actorID, itemID uuid.UUID) (*repository.Item, string, error)
	Deactivate(ctx context.Context, actorID, itemID uuid.UUID) (*repository.Item, error)
	Reactivate(ctx context.Context, actorID, itemID uuid.UUID) (*repository.Item, error)
	RotateTag(ctx context.Context, actorID, itemID uuid.UUID) (string, error)
	TagToken(ctx context.Context, actorID, itemID uuid.UUID) (string, error)
	ExpireStale(ctx context.Context, now time.Time) (int, error)
}

type Waitlist interface {
	Join(ctx context.Context, itemID, userID uuid.UUID, displayName, phone string) (*repository.WaitlistEntry, error)
	Leave(ctx context.Context, itemID, userID uuid.UUID) error
	Position(ctx context.Context, itemID, userID uuid.UUID) (waitlist.Position, error)
}

type ItemRepo interface {
	Create(ctx context.Context, item *repository.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Item, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*repository.Item, error)
}

type TransferRepo interface {
	GetByItemID(ctx context.Context, itemID uuid.UUID) ([]*repository.Transfer, error)
}

type UserRepo interface {
	Create(ctx context.Context, user *repository.User, password string) error
	Authenticate(ctx context.Context, email, password string) (*repository.User, error)
}

type Server struct {
	engine    Engine
	waitlist  Waitlist
	items     ItemRepo
	transfers TransferRepo
	users     UserRepo
	logger    *zap.Logger
	server    *http.Server
}

func New(eng Engine, wl Waitlist, items ItemRepo, transfers TransferRepo, users UserRepo, logger *zap.Logger) *Server {
	return &Server{
		engine:    eng,
		waitlist:  wl,
		items:     items,
		transfers: transfers,
		users:     users,
		logger:    logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/users", s.handleRegister).Methods(http.MethodPost)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)

	api.HandleFunc("/items", s.handleCreateItem).Methods(http.MethodPost)
	api.HandleFunc("/items", s.handleListItems).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", s.handleGetItem).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}/transfers", s.handleItemTransfers).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}/tag", s.handleTagToken).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}/tag/rotate", s.handleRotateTag).Methods(http.MethodPost)

	api.HandleFunc("/items/{id}/checkout", s.handleCheckout).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/pass", s.handlePass).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/return", s.handleReturn).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/checkin", s.handleCheckIn).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/claim", s.handleClaim).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/assign-holder", s.handleAssignHolder).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/request-return", s.handleRequestReturn).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/deactivate", s.handleDeactivate).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/activate", s.handleReactivate).Methods(http.MethodPost)

	api.HandleFunc("/transfers/{id}/accept", s.handleAccept).Methods(http.MethodPost)
	api.HandleFunc("/transfers/{id}/skip", s.handleSkip).Methods(http.MethodPost)
	api.HandleFunc("/transfers/{id}/cancel", s.handleCancel).Methods(http.MethodPost)

	api.HandleFunc("/items/{id}/waitlist", s.handleJoinWaitlist).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/waitlist", s.handleLeaveWaitlist).Methods(http.MethodDelete)
	api.HandleFunc("/items/{id}/waitlist/me", s.handleWaitlistPosition).Methods(http.MethodGet)

	return router
}

type contextKey string

const userContextKey contextKey = "authenticated_user"

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.users.Authenticate(r.Context(), email, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUser(r *http.Request) *repository.User {
	user, _ := r.Context().Value(userContextKey).(*repository.User)
	return user
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondEngineError maps the engine's error kinds onto HTTP statuses.
// Anything unclassified is an infrastructure failure: counted, logged and
// hidden behind a 500.
func (s *Server) respondEngineError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	switch engine.KindOf(err) {
	case engine.KindNotFound:
		respondError(w, http.StatusNotFound, err.Error())
	case engine.KindForbidden:
		respondError(w, http.StatusForbidden, err.Error())
	case engine.KindConflict:
		respondError(w, http.StatusConflict, err.Error())
	case engine.KindInvalidCredential:
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		s.logger.Error("Operation failed", zap.String("operation", operation),
			zap.String("path", r.URL.Path), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
