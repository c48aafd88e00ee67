package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/entity"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/session"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidSession     = errors.New("invalid session")
)

// AuthService owns registration, login and session-to-user resolution.
type AuthService struct {
	Users    repository.Store[entity.User]
	Sessions session.Registry
	Logger   *logrus.Logger
}

func NewAuthService(users repository.Store[entity.User], sessions session.Registry, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Logger: logger}
}

// AuthResult is returned by both Register and Login.
type AuthResult struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
}

// credentialsMatch is the whole authentication policy: exact, case-sensitive
// string comparison. Kept in one place so a real scheme can replace it
// without touching call sites.
func credentialsMatch(u entity.User, username, password string) bool {
	return u.Username == username && u.Password == password
}

// Register creates a user after a linear uniqueness scan on username, then
// issues a session.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return nil, ErrUsernameTaken
		}
	}

	u := entity.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Users.Put(ctx, u); err != nil {
		return nil, err
	}

	sid := s.Sessions.Create(u.ID)
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return &AuthResult{SessionID: sid, UserID: u.ID, Username: u.Username}, nil
}

// Login scans for a user matching both username and password and issues a
// fresh session, independent of any existing session for that user.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if credentialsMatch(u, username, password) {
			sid := s.Sessions.Create(u.ID)
			return &AuthResult{SessionID: sid, UserID: u.ID, Username: u.Username}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// CurrentUser resolves a session token to its user. An unknown token and a
// dangling session (user record gone) both come back as ErrInvalidSession.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (entity.User, error) {
	uid, ok := s.Sessions.Resolve(sessionID)
	if !ok {
		return entity.User{}, ErrInvalidSession
	}
	u, err := s.Users.GetByID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.User{}, ErrInvalidSession
	}
	if err != nil {
		return entity.User{}, err
	}
	return u, nil
}
