package service

import (
	"context"
	"fmt"
	"time"

	"grub-pool/internal/model"
	"grub-pool/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
)

// sessionService implements SessionService.
type sessionService struct {
	store   repository.Store
	baseURL string
	logger  zerolog.Logger
}

// NewSessionService creates a new session lifecycle service. baseURL is the
// externally visible prefix encoded into shareable QR codes.
func NewSessionService(store repository.Store, baseURL string, logger zerolog.Logger) SessionService {
	return &sessionService{
		store:   store,
		baseURL: baseURL,
		logger:  logger.With().Str("service", "session").Logger(),
	}
}

func (s *sessionService) List(ctx context.Context) ([]model.OrderSession, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list order sessions: %w", err)
	}
	if sessions == nil {
		sessions = []model.OrderSession{}
	}
	return sessions, nil
}

func (s *sessionService) Get(ctx context.Context, id int) (*model.OrderSession, error) {
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order session: %w", err)
	}
	if sess == nil {
		return nil, model.ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) GetByLink(ctx context.Context, link string) (*model.OrderSession, error) {
	sess, err := s.store.GetSessionByLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("failed to get order session by link: %w", err)
	}
	if sess == nil {
		return nil, model.ErrSessionNotFound
	}
	return sess, nil
}

func (s *sessionService) Create(ctx context.Context, insert *model.InsertOrderSession) (*model.OrderSession, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}

	// The link token is random and opaque so it cannot be guessed or
	// collide with another session's.
	link := uuid.NewString()

	sess, err := s.store.CreateSession(ctx, insert, link)
	if err != nil {
		return nil, fmt.Errorf("failed to create order session: %w", err)
	}

	s.logger.Info().
		Int("session_id", sess.ID).
		Str("restaurant", sess.Restaurant).
		Msg("order session created")

	return sess, nil
}

func (s *sessionService) Finalize(ctx context.Context, id int) (*model.OrderSession, error) {
	sess, err := s.store.FinalizeSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize order session: %w", err)
	}
	if sess == nil {
		return nil, model.ErrSessionNotFound
	}

	s.logger.Info().
		Int("session_id", sess.ID).
		Time("finalized_at", derefTime(sess.FinalizedAt)).
		Msg("order session finalized")

	return sess, nil
}

func (s *sessionService) ShareQR(ctx context.Context, id int) ([]byte, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/session/%s", s.baseURL, sess.SessionLink)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session QR code: %w", err)
	}

	return png, nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
