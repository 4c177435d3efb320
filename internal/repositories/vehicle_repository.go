package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"kaidan-backend/internal/models"
)

type VehicleRepository struct {
	DB *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{DB: db}
}

const vehicleColumns = `id, plate1, plate2, driver, phone, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	err := row.Scan(&v.ID, &v.Plate1, &v.Plate2, &v.Driver, &v.Phone, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *VehicleRepository) Upsert(ctx context.Context, v *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (plate1, plate2, driver, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (plate1)
		DO UPDATE SET plate2 = $2, driver = $3, phone = $4, updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.DB.Exec(ctx, query, v.Plate1, v.Plate2, v.Driver, v.Phone)
	return err
}

// FillEmpty updates only the blank columns of an existing vehicle row.
func (r *VehicleRepository) FillEmpty(ctx context.Context, plate1, plate2, driver, phone string) error {
	query := `
		UPDATE vehicles
		SET plate2 = CASE WHEN plate2 = '' THEN $2 ELSE plate2 END,
		    driver = CASE WHEN driver = '' THEN $3 ELSE driver END,
		    phone = CASE WHEN phone = '' THEN $4 ELSE phone END,
		    updated_at = CURRENT_TIMESTAMP
		WHERE plate1 = $1
	`
	_, err := r.DB.Exec(ctx, query, plate1, plate2, driver, phone)
	return err
}

func (r *VehicleRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}
