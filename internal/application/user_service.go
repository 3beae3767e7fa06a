package application

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-user-token-api/internal/domain/entity"
	repo "github.com/oksasatya/go-user-token-api/internal/domain/repository"
	"github.com/oksasatya/go-user-token-api/pkg/helpers"
	"github.com/oksasatya/go-user-token-api/pkg/mailer"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidSession     = errors.New("invalid session")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

var (
	usersCreated  = expvar.NewInt("users_created")
	tokensIssued  = expvar.NewInt("tokens_issued")
	tokenFailures = expvar.NewInt("token_failures")
)

// UserIndexer receives freshly created users for search.
type UserIndexer interface {
	IndexUser(ctx context.Context, u *entity.User) error
}

// MailQueue accepts email jobs for asynchronous delivery.
type MailQueue interface {
	Enqueue(ctx context.Context, job mailer.EmailJob) error
}

// Service implements user registration and token issuance. Indexer and
// Mail are optional; a nil value disables that side effect.
type Service struct {
	Repo     repo.UserRepository
	Sessions repo.SessionStore
	JWT      *helpers.JWTManager
	Indexer  UserIndexer
	Mail     MailQueue
	AppName  string
	Logger   *logrus.Logger
}

func NewService(users repo.UserRepository, sessions repo.SessionStore, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{
		Repo:     users,
		Sessions: sessions,
		JWT:      jwt,
		Logger:   logger,
	}
}

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
}

// CreateUser hashes the password and persists a new active user. Field
// format rules are enforced by the caller; uniqueness is enforced here and
// by the users_email_key constraint.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	email := entity.NormalizeEmail(in.Email)

	exists, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{Email: email, Password: hash, Name: in.Name}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	usersCreated.Add(1)
	s.log().WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user created")

	s.afterCreate(ctx, u)
	return u, nil
}

func (s *Service) afterCreate(ctx context.Context, u *entity.User) {
	if s.Indexer != nil {
		if err := s.Indexer.IndexUser(ctx, u); err != nil {
			s.log().WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
	}
	if s.Mail != nil {
		if err := s.Mail.Enqueue(ctx, mailer.NewWelcomeJob(s.AppName, u.Email, u.Name)); err != nil {
			s.log().WithError(err).WithField("user_id", u.ID).Warn("failed to enqueue welcome email")
		}
	}
}

// Authenticate validates email/password. Unknown users, inactive users and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken authenticates the credentials and returns a signed token. The
// token's session replaces any earlier one for the same user.
func (s *Service) IssueToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			tokenFailures.Add(1)
		}
		return "", err
	}

	sid := uuid.NewString()
	token, _, err := s.JWT.GenerateToken(u.ID, sid)
	if err != nil {
		s.log().WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return "", err
	}
	if err := s.Sessions.Save(ctx, entity.Session{
		UserID:    u.ID,
		SessionID: sid,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: time.Now(),
	}); err != nil {
		return "", err
	}
	tokensIssued.Add(1)
	return token, nil
}

// VerifyToken resolves a token to its user id, requiring a live session
// with the same sid.
func (s *Service) VerifyToken(ctx context.Context, token string) (string, error) {
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		return "", ErrInvalidSession
	}
	sess, err := s.Sessions.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}
	if sess.SessionID != claims.SessionID {
		return "", ErrInvalidSession
	}
	return claims.UserID, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) log() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}
