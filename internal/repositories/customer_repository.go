package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"kaidan-backend/internal/models"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

const customerColumns = `id, name, location, province, note, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (*models.Customer, error) {
	c := &models.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Province, &c.Note, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all customers in insertion order. Insertion order is the
// tie-break order the matcher relies on.
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) GetByName(ctx context.Context, name string) (*models.Customer, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE name = $1`, name)
	return scanCustomer(row)
}

// Upsert inserts a customer or overwrites its fields, keyed by name.
// Used by the manual reference editor and the backup import.
func (r *CustomerRepository) Upsert(ctx context.Context, c *models.Customer) error {
	query := `
		INSERT INTO customers (name, location, province, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name)
		DO UPDATE SET location = $2, province = $3, note = $4, updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.DB.Exec(ctx, query, c.Name, c.Location, c.Province, c.Note)
	return err
}

// FillEmpty updates only the blank columns of an existing row. The
// learner uses this so manual data always wins over inferred data.
func (r *CustomerRepository) FillEmpty(ctx context.Context, name, location, province string) error {
	query := `
		UPDATE customers
		SET location = CASE WHEN location = '' THEN $2 ELSE location END,
		    province = CASE WHEN province = '' THEN $3 ELSE province END,
		    updated_at = CURRENT_TIMESTAMP
		WHERE name = $1
	`
	_, err := r.DB.Exec(ctx, query, name, location, province)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}
