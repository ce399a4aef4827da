package repository

import (
	"context"
	"fmt"

	"materialhub/crawler/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository interface {
	Upsert(ctx context.Context, p *domain.Product) error
}

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Upsert writes one crawled product, keyed (source, name, price) so that
// re-running a crawl is idempotent.
func (r *productRepository) Upsert(ctx context.Context, p *domain.Product) error {
	query := `
	INSERT INTO crawled_products
		(source, name, price, unit, size, brand, image_url, original_url, category, sub_category, crawled_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
	ON CONFLICT (source, name, price)
	DO UPDATE SET
		unit = EXCLUDED.unit,
		size = EXCLUDED.size,
		brand = EXCLUDED.brand,
		image_url = EXCLUDED.image_url,
		original_url = EXCLUDED.original_url,
		category = EXCLUDED.category,
		sub_category = EXCLUDED.sub_category,
		crawled_at = now()`
	_, err := r.db.Exec(ctx, query,
		p.Source, p.Name, p.Price, p.Unit, p.Size, p.Brand,
		p.ImageURL, p.OriginalURL, p.Category, p.SubCategory)
	if err != nil {
		return fmt.Errorf("failed to save crawled product: %w", err)
	}

	return nil
}
