package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type authServiceImpl struct {
	logger        zerolog.Logger
	storage       storage.Storage
	sessions      SessionService
	hashParams    *argon2id.Params
	jwtIssuer     string
	jwtSigningKey []byte
	sessionTTL    time.Duration
}

// NewAuthService returns an AuthService. sessionTTL bounds sessions
// created without "remember me"; hashParams defaults to
// argon2id.DefaultParams when nil.
func NewAuthService(
	logger zerolog.Logger,
	st storage.Storage,
	sessions SessionService,
	hashParams *argon2id.Params,
	jwtIssuer string,
	jwtSigningKey []byte,
	sessionTTL time.Duration,
) AuthService {
	if hashParams == nil {
		hashParams = argon2id.DefaultParams
	}
	return &authServiceImpl{
		logger:        logger,
		storage:       st,
		sessions:      sessions,
		hashParams:    hashParams,
		jwtIssuer:     jwtIssuer,
		jwtSigningKey: jwtSigningKey,
		sessionTTL:    sessionTTL,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (*LoginResult, error) {
	user := models.User{
		Name:  strings.TrimSpace(params.Name),
		Email: strings.TrimSpace(params.Email),
	}
	if user.Name == "" {
		s.logger.Warn().
			Str("email", user.Email).
			Msg("user name is empty")
		return nil, ErrEmptyUserName
	}

	passwordHash, err := argon2id.CreateHash(params.Password, s.hashParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}
	user.Password = passwordHash

	var result *LoginResult
	err = s.storage.InTx(ctx, func(st storage.Storage) error {
		_, err := st.Users().GetUserByName(ctx, user.Name)
		if err == nil {
			return ErrUserNameTaken
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		_, err = st.Users().GetUserByEmail(ctx, user.Email)
		if err == nil {
			return ErrUserEmailTaken
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		err = st.Users().CreateUser(ctx, &user)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrUserNameTaken):
				return ErrUserNameTaken
			case errors.Is(err, storage.ErrUserEmailTaken):
				return ErrUserEmailTaken
			}
			return err
		}
		s.logger.Debug().
			Int64("user_id", user.ID).
			Str("email", user.Email).
			Msg("inserted user")

		result, err = s.createSession(ctx, st, user.ID, false)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUserNameTaken) || errors.Is(err, ErrUserEmailTaken) {
			s.logger.Warn().
				Err(err).
				Str("name", user.Name).
				Str("email", user.Email).
				Msg("user already exists")
			return nil, err
		}

		s.logger.Error().
			Err(err).
			Str("email", user.Email).
			Msg("failed to register user")
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("session_id", result.SessionID).
		Msg("registered user")
	return result, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	email := strings.TrimSpace(params.Email)

	user, err := s.storage.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("email", email).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("email", email).
			Msg("failed to select user by email")
		return nil, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Msg("selected user")

	match, err := argon2id.ComparePasswordAndHash(params.Password, user.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Warn().
			Int64("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrUserPasswordMismatch
	}

	result, err := s.createSession(ctx, s.storage, user.ID, params.Remember)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", user.ID).
			Msg("failed to create session")
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Str("session_id", result.SessionID).
		Bool("remember", result.Remember).
		Msg("logged in")
	return result, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, sessionID string) error {
	err := s.sessions.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Msg("logged out")
	return nil
}

func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.parseSessionToken(token)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Msg("failed to parse session token")
		return nil, ErrInvalidToken
	}

	session, err := s.sessions.GetSessionByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Int64("user_id", session.UserID).
				Str("session_id", session.ID).
				Msg("session user not found")
			return nil, ErrSessionNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("user_id", session.UserID).
			Msg("failed to select user by id")
		return nil, err
	}

	return &Principal{
		User:      user,
		SessionID: session.ID,
	}, nil
}

func (s *authServiceImpl) createSession(
	ctx context.Context,
	st storage.Storage,
	userID int64,
	remember bool,
) (*LoginResult, error) {
	ttl := s.sessionTTL
	if remember {
		ttl = RememberSessionTTL
	}

	now := time.Now()
	session := models.Session{
		UserID:    userID,
		Remember:  remember,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	sessionUUID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session uuid: %w", err)
	}
	session.ID = sessionUUID.String()

	err = st.Sessions().CreateSession(ctx, &session)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Str("session_id", session.ID).
		Time("expires_at", session.ExpiresAt).
		Msg("inserted session")

	token, err := s.generateSessionToken(session.ID, now, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID:    userID,
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Remember:  remember,
	}, nil
}

func (s *authServiceImpl) parseSessionToken(token string) (*jwt.RegisteredClaims, error) {
	t, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtSigningKey, nil
		},
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token is expired: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, errors.New("failed to parse token claims")
	}
	return claims, nil
}

func (s *authServiceImpl) generateSessionToken(sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        tokenUUID.String(),
		Issuer:    s.jwtIssuer,
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	})

	signed, err := token.SignedString(s.jwtSigningKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
