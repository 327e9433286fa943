package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muhammadheryan/variant-catalog/cmd/config"
	"github.com/muhammadheryan/variant-catalog/constant"
	"github.com/muhammadheryan/variant-catalog/model"
	redisrepo "github.com/muhammadheryan/variant-catalog/repository/redis"
	"github.com/muhammadheryan/variant-catalog/utils/errors"
	"github.com/muhammadheryan/variant-catalog/utils/logger"
)

const tokenSubject = "browse"

type SessionApp interface {
	StartSession(ctx context.Context) (*model.SessionResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	EndSession(ctx context.Context, sessionID string) error
}

type SessionAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewSessionApp(config *config.Config, redisRepo redisrepo.Repository) SessionApp {
	return &SessionAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

// StartSession opens an anonymous browsing session. The token's jti is the
// session ID that keys the caller's selections.
func (s *SessionAppImpl) StartSession(ctx context.Context) (*model.SessionResponse, error) {
	token, jti, expiresAt, err := s.generateJWT()
	if err != nil {
		logger.Error("[StartSession] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[StartSession] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *SessionAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}
	if claims.Subject != tokenSubject {
		return "", fmt.Errorf("token is not a browsing session")
	}

	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	alive, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil || !alive {
		return "", fmt.Errorf("invalid or expired session")
	}

	return jti, nil
}

func (s *SessionAppImpl) EndSession(ctx context.Context, sessionID string) error {
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[EndSession] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *SessionAppImpl) generateJWT() (string, string, time.Time, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to generate session id: %w", err)
	}
	now := time.Now()
	expiresAt := now.Add(s.config.Auth.JWTExpiration)
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, expiresAt, nil
}
