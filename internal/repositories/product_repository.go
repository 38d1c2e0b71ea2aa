package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductForShop(ctx context.Context, id, shopID uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id, shopID uuid.UUID) error
	ListProducts(ctx context.Context, shopID uuid.UUID, filters models.ProductFilters) ([]*models.Product, error)
	FindRelated(ctx context.Context, product *models.Product, limit int) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, shop_id, product_code, name, type, color, category, size, price, stock, location, image_url, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.ShopID, &product.ProductCode, &product.Name,
		&product.Type, &product.Color, &product.Category, &product.Size,
		&product.Price, &product.Stock, &product.Location, &product.ImageURL, &product.CreatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (shop_id, product_code, name, type, color, category, size, price, stock, location, image_url)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.ShopID, product.ProductCode, product.Name,
		product.Type, product.Color, product.Category, product.Size,
		product.Price, product.Stock, product.Location, product.ImageURL).Scan(&product.ID, &product.CreatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

// GetProductForShop fetches a product only when it belongs to the given
// shop. Nothing else in the design enforces tenant isolation, so every
// mutation path goes through this check.
func (r *productRepository) GetProductForShop(ctx context.Context, id, shopID uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 AND shop_id = $2`, productColumns)

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id, shopID))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

// UpdateProduct never touches product_code; the code is assigned at
// creation and immutable afterward.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, type = $2, color = $3, category = $4, size = $5, price = $6, stock = $7, location = $8, image_url = $9
		WHERE id = $10 AND shop_id = $11
	`

	result, err := r.DB.ExecContext(dbCtx, query, product.Name, product.Type, product.Color, product.Category,
		product.Size, product.Price, product.Stock, product.Location, product.ImageURL,
		product.ID, product.ShopID)
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

func (r *productRepository) DeleteProduct(ctx context.Context, id, shopID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM products WHERE id = $1 AND shop_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, id, shopID)
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

// ListProducts conjoins one predicate per present filter field on top of
// the mandatory shop scope. Newest products come first; id breaks ties so
// the ordering is stable.
func (r *productRepository) ListProducts(ctx context.Context, shopID uuid.UUID, filters models.ProductFilters) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var sb strings.Builder

	fmt.Fprintf(&sb, `SELECT %s FROM products WHERE shop_id = $1`, productColumns)

	args := []any{shopID}

	addPredicate := func(clause string, value any) {
		args = append(args, value)
		fmt.Fprintf(&sb, clause, len(args))
	}

	if filters.Type != "" {
		addPredicate(" AND type = $%d", filters.Type)
	}

	if filters.Color != "" {
		addPredicate(" AND color = $%d", filters.Color)
	}

	if filters.Category != "" {
		addPredicate(" AND category = $%d", filters.Category)
	}

	if filters.Size != "" {
		addPredicate(" AND size = $%d", filters.Size)
	}

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		fmt.Fprintf(&sb, " AND (name ILIKE $%d OR product_code ILIKE $%d)", len(args), len(args))
	}

	if filters.MinPrice != nil {
		addPredicate(" AND price >= $%d", *filters.MinPrice)
	}

	if filters.MaxPrice != nil {
		addPredicate(" AND price <= $%d", *filters.MaxPrice)
	}

	sb.WriteString(" ORDER BY created_at DESC, id DESC")

	rows, err := r.DB.QueryContext(dbCtx, sb.String(), args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return collectProducts(rows)
}

// FindRelated uses broad recall on purpose: sharing any one of category,
// type or color qualifies, unlike the conjunctive listing filter.
func (r *productRepository) FindRelated(ctx context.Context, product *models.Product, limit int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products
		WHERE shop_id = $1 AND id <> $2 AND (category = $3 OR type = $4 OR color = $5)
		LIMIT $6`, productColumns)

	rows, err := r.DB.QueryContext(dbCtx, query, product.ShopID, product.ID,
		product.Category, product.Type, product.Color, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]*models.Product, error) {
	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
