package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type loginSessions interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Service struct {
	repo     usersRepo
	sessions loginSessions
	// injectable for tests, bcrypt is slow on purpose
	HashFunc  func(password string) (string, error)
	CheckFunc func(password, hash string) bool
	NowFunc   func() time.Time
}

func NewService(repo usersRepo, sessions loginSessions) *Service {
	return &Service{
		repo:      repo,
		sessions:  sessions,
		HashFunc:  pkg.HashPassword,
		CheckFunc: pkg.CheckPasswordHash,
		NowFunc:   time.Now,
	}
}

func (s *Service) Register(ctx context.Context, creds Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.HashFunc(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(creds.Username),
		PasswordHash: hash,
		CreatedAt:    s.NowFunc().UTC(),
	}
	if err := s.repo.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	return &user, nil
}

// Login verifies the credentials and opens a login session; returns the session token.
func (s *Service) Login(ctx context.Context, creds Credentials) (_ string, _ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil, ErrWrongCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if !s.CheckFunc(creds.Password, user.PasswordHash) {
		return "", nil, ErrWrongCredentials
	}

	token, err := s.sessions.Login(ctx, user.ID, s.NowFunc())
	if err != nil {
		return "", nil, fmt.Errorf("create login session: %w", err)
	}

	return token, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Logout(ctx, token)
}

func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	return s.repo.Get(ctx, userID)
}
