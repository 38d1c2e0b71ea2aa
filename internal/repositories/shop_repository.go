package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/utils"
)

type ShopRepository interface {
	CreateShop(ctx context.Context, shop *models.Shop) error
	GetShopByID(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	GetShopBySlug(ctx context.Context, slug string) (*models.Shop, error)
	UpdateShop(ctx context.Context, shop *models.Shop) error
	DeleteShop(ctx context.Context, id uuid.UUID) error
	SetOnboarded(ctx context.Context, id uuid.UUID) error
	GetShopStats(ctx context.Context, shopID uuid.UUID) (*models.ShopStats, error)
}

type shopRepository struct {
	DB *sql.DB
}

func NewShopRepo(db *sql.DB) ShopRepository {
	return &shopRepository{DB: db}
}

const shopColumns = `id, name, slug, description, address, city, state, postal_code, phone, email, logo_url, category, settings, is_onboarded, created_at, updated_at`

func scanShop(row interface{ Scan(...any) error }) (*models.Shop, error) {
	shop := &models.Shop{}

	var settings []byte

	err := row.Scan(&shop.ID, &shop.Name, &shop.Slug, &shop.Description,
		&shop.Address, &shop.City, &shop.State, &shop.PostalCode,
		&shop.Phone, &shop.Email, &shop.LogoURL, &shop.Category,
		&settings, &shop.IsOnboarded, &shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &shop.Settings); err != nil {
			return nil, fmt.Errorf("decoding shop settings: %w", err)
		}
	}

	return shop, nil
}

func (r *shopRepository) CreateShop(ctx context.Context, shop *models.Shop) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	settings, err := json.Marshal(shop.Settings)
	if err != nil {
		return fmt.Errorf("encoding shop settings: %w", err)
	}

	query := `INSERT INTO shops (name, slug, description, address, city, state, postal_code, phone, email, category, settings, is_onboarded)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, shop.Name, shop.Slug, shop.Description,
		shop.Address, shop.City, shop.State, shop.PostalCode, shop.Phone, shop.Email,
		shop.Category, settings, shop.IsOnboarded).Scan(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt)
}

func (r *shopRepository) GetShopByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM shops WHERE id = $1`, shopColumns)

	shop, err := scanShop(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return shop, nil
}

func (r *shopRepository) GetShopBySlug(ctx context.Context, slug string) (*models.Shop, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM shops WHERE slug = $1`, shopColumns)

	shop, err := scanShop(r.DB.QueryRowContext(dbCtx, query, slug))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return shop, nil
}

// UpdateShop leaves slug and is_onboarded untouched; the onboarding flag
// moves only through SetOnboarded.
func (r *shopRepository) UpdateShop(ctx context.Context, shop *models.Shop) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	settings, err := json.Marshal(shop.Settings)
	if err != nil {
		return fmt.Errorf("encoding shop settings: %w", err)
	}

	query := `
		UPDATE shops SET name = $1, description = $2, address = $3, city = $4, state = $5, postal_code = $6, phone = $7, email = $8, category = $9, settings = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, shop.Name, shop.Description, shop.Address,
		shop.City, shop.State, shop.PostalCode, shop.Phone, shop.Email,
		shop.Category, settings, shop.ID).Scan(&shop.UpdatedAt)
}

func (r *shopRepository) DeleteShop(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM shops WHERE id = $1`, id)

	return err
}

// SetOnboarded flips is_onboarded to true. The flag never reverts.
func (r *shopRepository) SetOnboarded(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE shops SET is_onboarded = TRUE, updated_at = NOW() WHERE id = $1`, id)
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

func (r *shopRepository) GetShopStats(ctx context.Context, shopID uuid.UUID) (*models.ShopStats, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock < 5),
		       COUNT(DISTINCT category),
		       COALESCE(SUM(price * stock), 0)
		FROM products
		WHERE shop_id = $1
	`

	stats := &models.ShopStats{}

	err := r.DB.QueryRowContext(dbCtx, query, shopID).Scan(&stats.TotalProducts, &stats.LowStockCount, &stats.CategoriesCount, &stats.TotalValue)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
