package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/utils"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	LinkShopToProfile(ctx context.Context, userID, shopID uuid.UUID) error
	GetOnboardingStatus(ctx context.Context, userID uuid.UUID) (*models.OnboardingStatus, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

// CreateUser inserts the user and its owner profile in one transaction,
// so a profile exists for every account from the first request on.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer tx.Rollback()

	query := `INSERT INTO users (email, password, full_name)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, user.Email, user.Password, user.FullName).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(dbCtx, `INSERT INTO profiles (id, full_name, role) VALUES ($1, $2, $3)`,
		user.ID, user.FullName, models.RoleOwner)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}

	query := `SELECT id, email, password, full_name, created_at, updated_at FROM users WHERE email = $1`

	err := r.DB.QueryRowContext(dbCtx, query, email).Scan(&user.ID, &user.Email, &user.Password, &user.FullName, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}

	query := `SELECT id, email, password, full_name, created_at, updated_at FROM users WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&user.ID, &user.Email, &user.Password, &user.FullName, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	profile := &models.Profile{}

	query := `SELECT id, shop_id, full_name, avatar_url, role, created_at, updated_at FROM profiles WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&profile.ID, &profile.ShopID, &profile.FullName, &profile.AvatarURL, &profile.Role, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return profile, nil
}

func (r *userRepository) LinkShopToProfile(ctx context.Context, userID, shopID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE profiles SET shop_id = $1, updated_at = NOW() WHERE id = $2`, shopID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// GetOnboardingStatus derives the composite status in a single join:
// "fully onboarded" requires both a linked shop and its is_onboarded
// flag, never either alone.
func (r *userRepository) GetOnboardingStatus(ctx context.Context, userID uuid.UUID) (*models.OnboardingStatus, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.shop_id, COALESCE(s.is_onboarded, FALSE)
		FROM profiles p
		LEFT JOIN shops s ON p.shop_id = s.id
		WHERE p.id = $1
	`

	status := &models.OnboardingStatus{}

	var shopID *uuid.UUID
	var shopOnboarded bool

	err := r.DB.QueryRowContext(dbCtx, query, userID).Scan(&shopID, &shopOnboarded)
	if err != nil {
		if err == sql.ErrNoRows {
			return status, nil
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	status.HasProfile = true
	status.ShopID = shopID
	status.HasShop = shopID != nil
	status.IsOnboarded = status.HasShop && shopOnboarded

	return status, nil
}
