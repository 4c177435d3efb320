package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"kaidan-backend/internal/models"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `id, name, spec_jin, category, note, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.SpecJin, &p.Category, &p.Note, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Upsert(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, spec_jin, category, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name)
		DO UPDATE SET spec_jin = $2, category = $3, note = $4, updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.DB.Exec(ctx, query, p.Name, p.SpecJin, p.Category, p.Note)
	return err
}

// InsertIfAbsent adds a product only when the name is new. The learner
// never back-fills existing product rows.
func (r *ProductRepository) InsertIfAbsent(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, spec_jin, category, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
	`
	_, err := r.DB.Exec(ctx, query, p.Name, p.SpecJin, p.Category, p.Note)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
