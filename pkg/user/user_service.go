package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service interface {
	Register(ctx context.Context, user User, password string) (User, error)
	// Authenticate checks the password against the stored bcrypt hash and
	// returns the user on success.
	Authenticate(ctx context.Context, username, password string) (User, error)
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateSettings(ctx context.Context, settings Settings) (Settings, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type ServiceImpl struct {
	repo Repo
	// defaults fill in settings a user did not provide on registration.
	defaults Settings
}

func NewService(repo Repo, defaults Settings) *ServiceImpl {
	if defaults.IncomeCategory == "" {
		defaults.IncomeCategory = "Income"
	}
	return &ServiceImpl{repo: repo, defaults: defaults}
}

func (s *ServiceImpl) Register(ctx context.Context, user User, password string) (User, error) {
	available, err := s.repo.IsUsernameAvailable(ctx, user.Username)
	if err != nil {
		return User{}, err
	}
	if !available {
		return User{}, fmt.Errorf("username %q is already taken", user.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Uid = uuid.NewString()
	user.PasswordHash = string(hash)
	if user.Settings.Currency == "" {
		user.Settings.Currency = s.defaults.Currency
	}
	if user.Settings.IncomeCategory == "" {
		user.Settings.IncomeCategory = s.defaults.IncomeCategory
	}

	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = id
	log.Infof("registered user %s (%d)", user.Username, user.Id)
	return user, nil
}

func (s *ServiceImpl) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		// Same error as a wrong password, so usernames cannot be probed.
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetUser(ctx, userId)
}

func (s *ServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return s.repo.GetUserByUid(ctx, uid)
}

func (s *ServiceImpl) UpdateSettings(ctx context.Context, settings Settings) (Settings, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if settings.IncomeCategory == "" {
		settings.IncomeCategory = s.defaults.IncomeCategory
	}
	updated, err := s.repo.UpdateSettings(ctx, userId, settings)
	if err != nil {
		return Settings{}, err
	}
	if !updated {
		return Settings{}, ErrUserNotFound
	}
	return settings, nil
}

func (s *ServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return s.repo.IsUsernameAvailable(ctx, username)
}
