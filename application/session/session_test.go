package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	appsession "github.com/muhammadheryan/variant-catalog/application/session"
	"github.com/muhammadheryan/variant-catalog/cmd/config"
	"github.com/muhammadheryan/variant-catalog/constant"
	redismocks "github.com/muhammadheryan/variant-catalog/mocks/repository/redis"
	cerr "github.com/muhammadheryan/variant-catalog/utils/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: 2 * time.Hour,
		},
	}
}

// startSession issues a token through the app and returns it with its session ID.
func startSession(t *testing.T, redisRepo *redismocks.RedisRepository) (string, string) {
	t.Helper()
	var sessionID string
	redisRepo.
		On("SetSession", mock.Anything, mock.AnythingOfType("string"), 2*time.Hour).
		Run(func(args mock.Arguments) { sessionID = args.String(1) }).
		Return(nil).
		Once()

	resp, err := appsession.NewSessionApp(testConfig(), redisRepo).StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	return resp.Token, sessionID
}

func TestSessionApp_StartSession(t *testing.T) {
	type fields struct {
		config    *config.Config
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: token issued and session stored",
			fields: fields{
				config:    testConfig(),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), 2*time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: redis SetSession fails",
			fields: fields{
				config:    testConfig(),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), 2*time.Hour).
					Return(errors.New("connection refused")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsession.NewSessionApp(tt.fields.config, tt.fields.redisRepo)

			before := time.Now()
			got, err := app.StartSession(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("StartSession() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("error = %v, want ErrInternal", err)
				}
				return
			}
			if got.Token == "" {
				t.Fatalf("StartSession() returned empty token")
			}
			if got.ExpiresAt.Before(before.Add(time.Hour - time.Second)) {
				t.Fatalf("ExpiresAt = %v, want about an hour from now", got.ExpiresAt)
			}
		})
	}
}

func TestSessionApp_ValidateToken(t *testing.T) {
	t.Run("success: live session returns its id", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		token, sessionID := startSession(t, redisRepo)
		redisRepo.On("GetSession", mock.Anything, sessionID).Return(true, nil).Once()

		got, err := appsession.NewSessionApp(testConfig(), redisRepo).ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if got != sessionID {
			t.Fatalf("ValidateToken() = %q, want %q", got, sessionID)
		}
	})

	t.Run("error: session ended in redis", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		token, sessionID := startSession(t, redisRepo)
		redisRepo.On("GetSession", mock.Anything, sessionID).Return(false, errors.New("session not found")).Once()

		if _, err := appsession.NewSessionApp(testConfig(), redisRepo).ValidateToken(context.Background(), token); err == nil {
			t.Fatalf("ValidateToken() error = nil, want error")
		}
	})

	t.Run("error: malformed token", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		if _, err := appsession.NewSessionApp(testConfig(), redisRepo).ValidateToken(context.Background(), "invalid.token.string"); err == nil {
			t.Fatalf("ValidateToken() error = nil, want error")
		}
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		token, _ := startSession(t, redisRepo)

		cfg := testConfig()
		cfg.Auth.JWTSecret = "rotated-secret"
		if _, err := appsession.NewSessionApp(cfg, redisRepo).ValidateToken(context.Background(), token); err == nil {
			t.Fatalf("ValidateToken() error = nil, want error")
		}
	})

	t.Run("error: token for another subject", func(t *testing.T) {
		redisRepo := redismocks.NewRedisRepository(t)
		claims := jwt.RegisteredClaims{
			Subject:   "42",
			ID:        "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testConfig().Auth.JWTSecret))
		if err != nil {
			t.Fatalf("SignedString() error = %v", err)
		}
		if _, err := appsession.NewSessionApp(testConfig(), redisRepo).ValidateToken(context.Background(), token); err == nil {
			t.Fatalf("ValidateToken() error = nil, want error")
		}
	})
}

func TestSessionApp_EndSession(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "success: session deleted"},
		{name: "error: redis delete fails", err: errors.New("connection refused"), wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRedisRepository(t)
			redisRepo.On("DeleteSession", mock.Anything, "sess-1").Return(tt.err).Once()

			err := appsession.NewSessionApp(testConfig(), redisRepo).EndSession(context.Background(), "sess-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("EndSession() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
