package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user does not exist")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	UpdateSettings(ctx context.Context, userId int, settings Settings) (bool, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	query := `INSERT INTO users (uid, username, display_name, password_hash, currency, income_category)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		user.Uid,
		user.Username,
		user.DisplayName,
		user.PasswordHash,
		user.Settings.Currency,
		user.Settings.IncomeCategory,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (r *RepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	return r.getUser(ctx, `WHERE id = $1`, id)
}

func (r *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return r.getUser(ctx, `WHERE uid = $1`, uid)
}

func (r *RepoImpl) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUser(ctx, `WHERE username = $1`, username)
}

func (r *RepoImpl) getUser(ctx context.Context, where string, arg any) (User, error) {
	query := `SELECT id, uid, username, display_name, password_hash, currency, income_category FROM users ` + where
	var user User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.Id,
		&user.Uid,
		&user.Username,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Settings.Currency,
		&user.Settings.IncomeCategory,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (r *RepoImpl) UpdateSettings(ctx context.Context, userId int, settings Settings) (bool, error) {
	query := `UPDATE users SET currency = $1, income_category = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, query, settings.Currency, settings.IncomeCategory, userId)
	if err != nil {
		log.Errorf("failed to update user settings: %v", err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepoImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count)
	if err != nil {
		log.Errorf("failed to check username availability: %v", err)
		return false, err
	}
	return count == 0, nil
}
