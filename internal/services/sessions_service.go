package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type sessionServiceImpl struct {
	logger  zerolog.Logger
	storage storage.Storage
}

func NewSessionService(
	logger zerolog.Logger,
	st storage.Storage,
) SessionService {
	return &sessionServiceImpl{
		logger:  logger,
		storage: st,
	}
}

func (s *sessionServiceImpl) GetSessionByID(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.storage.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("session_id", sessionID).
				Msg("session not found")
			return nil, ErrSessionNotFound
		}

		s.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to select session by id")
		return nil, err
	}

	if session.Expired(time.Now()) {
		s.logger.Warn().
			Str("session_id", session.ID).
			Time("expires_at", session.ExpiresAt).
			Msg("session expired")
		return nil, ErrSessionExpired
	}

	s.logger.Debug().
		Str("session_id", session.ID).
		Int64("user_id", session.UserID).
		Msg("session found")
	return session, nil
}

func (s *sessionServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	err := s.storage.Sessions().DeleteSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSessionNotFound
		}

		s.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to delete session")
		return err
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Msg("deleted session")
	return nil
}
