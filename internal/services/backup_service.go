package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"kaidan-backend/internal/cache"
	"kaidan-backend/internal/config"
	"kaidan-backend/internal/models"
	"kaidan-backend/internal/timeutil"
)

// Backup import modes.
const (
	ImportModeMerge   = "merge"
	ImportModeReplace = "replace"
)

// Snapshot is the full-database JSON backup document.
type Snapshot struct {
	Meta struct {
		ExportedAt string `json:"exported_at"`
		Version    int    `json:"version"`
	} `json:"meta"`
	Settings  []models.Setting     `json:"settings"`
	Customers []models.Customer    `json:"customers"`
	Products  []models.Product     `json:"products"`
	Vehicles  []models.Vehicle     `json:"vehicles"`
	Invoices  []models.Invoice     `json:"invoices"`
	Items     []models.InvoiceItem `json:"invoice_items"`
	Audit     []models.AuditEntry  `json:"invoice_audit"`
}

// BackupService exports and imports whole-database JSON snapshots and
// optionally ships each export to S3-compatible storage.
type BackupService struct {
	pool *pgxpool.Pool
	cfg  *config.Config
	log  zerolog.Logger
}

func NewBackupService(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *BackupService {
	return &BackupService{pool: pool, cfg: cfg, log: log}
}

// Export serializes all seven tables. When snapshot upload is enabled
// the document is also shipped to the configured bucket; upload failures
// are logged, the export still succeeds.
func (s *BackupService) Export(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	snap.Meta.ExportedAt = timeutil.Now().Format(time.RFC3339)
	snap.Meta.Version = 1

	if err := s.collect(ctx, snap); err != nil {
		return nil, err
	}

	if s.cfg.Backup.Enabled {
		if err := s.upload(ctx, snap); err != nil {
			s.log.Warn().Err(err).Msg("snapshot upload failed")
		}
	}
	return snap, nil
}

func (s *BackupService) collect(ctx context.Context, snap *Snapshot) error {
	rows, err := s.pool.Query(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v models.Setting
		if err := rows.Scan(&v.Key, &v.Value, &v.UpdatedAt); err != nil {
			rows.Close()
			return err
		}
		snap.Settings = append(snap.Settings, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, name, location, province, note, created_at, updated_at FROM customers ORDER BY id`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v models.Customer
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Province, &v.Note, &v.CreatedAt, &v.UpdatedAt); err != nil {
			rows.Close()
			return err
		}
		snap.Customers = append(snap.Customers, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, name, spec_jin, category, note, created_at, updated_at FROM products ORDER BY id`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v models.Product
		if err := rows.Scan(&v.ID, &v.Name, &v.SpecJin, &v.Category, &v.Note, &v.CreatedAt, &v.UpdatedAt); err != nil {
			rows.Close()
			return err
		}
		snap.Products = append(snap.Products, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, plate1, plate2, driver, phone, created_at, updated_at FROM vehicles ORDER BY id`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Plate1, &v.Plate2, &v.Driver, &v.Phone, &v.CreatedAt, &v.UpdatedAt); err != nil {
			rows.Close()
			return err
		}
		snap.Vehicles = append(snap.Vehicles, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, invoice_no, customer, date, date_iso, category, location,
		total_qty, total_weight, total_amount, filename, created_at FROM invoices ORDER BY id`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v models.Invoice
		err := rows.Scan(&v.ID, &v.InvoiceNo, &v.Customer, &v.Date, &v.DateISO, &v.Category,
			&v.Location, &v.TotalQty, &v.TotalWeight, &v.TotalAmount, &v.Filename, &v.CreatedAt)
		if err != nil {
			rows.Close()
			return err
		}
		snap.Invoices = append(snap.Invoices, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, invoice_id, product_name, spec_jin, qty, weight, price, amount, created_at FROM invoice_items ORDER BY id`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v models.InvoiceItem
		err := rows.Scan(&v.ID, &v.InvoiceID, &v.ProductName, &v.SpecJin, &v.Qty, &v.Weight, &v.Price, &v.Amount, &v.CreatedAt)
		if err != nil {
			rows.Close()
			return err
		}
		snap.Items = append(snap.Items, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, invoice_id, action, detail, created_at FROM invoice_audit ORDER BY id`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v models.AuditEntry
		if err := rows.Scan(&v.ID, &v.InvoiceID, &v.Action, &v.Detail, &v.CreatedAt); err != nil {
			rows.Close()
			return err
		}
		snap.Audit = append(snap.Audit, v)
	}
	rows.Close()
	return rows.Err()
}

// Import restores a snapshot. Replace wipes the business tables first;
// merge upserts reference rows on their natural keys and only adds
// invoices that are not already present.
func (s *BackupService) Import(ctx context.Context, snap *Snapshot, mode string) error {
	if mode != ImportModeMerge && mode != ImportModeReplace {
		return fmt.Errorf("unknown import mode %q", mode)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if mode == ImportModeReplace {
		for _, table := range []string{"invoice_items", "invoices", "invoice_audit", "customers", "products", "vehicles"} {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
	}

	for _, v := range snap.Settings {
		_, err := tx.Exec(ctx, `
			INSERT INTO settings (key, value, updated_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = CURRENT_TIMESTAMP
		`, v.Key, v.Value)
		if err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}

	for _, v := range snap.Customers {
		_, err := tx.Exec(ctx, `
			INSERT INTO customers (name, location, province, note)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name)
			DO UPDATE SET location = $2, province = $3, note = $4, updated_at = CURRENT_TIMESTAMP
		`, v.Name, v.Location, v.Province, v.Note)
		if err != nil {
			return fmt.Errorf("import customers: %w", err)
		}
	}

	for _, v := range snap.Products {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (name, spec_jin, category, note)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name)
			DO UPDATE SET spec_jin = $2, category = $3, note = $4, updated_at = CURRENT_TIMESTAMP
		`, v.Name, v.SpecJin, v.Category, v.Note)
		if err != nil {
			return fmt.Errorf("import products: %w", err)
		}
	}

	for _, v := range snap.Vehicles {
		_, err := tx.Exec(ctx, `
			INSERT INTO vehicles (plate1, plate2, driver, phone)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (plate1)
			DO UPDATE SET plate2 = $2, driver = $3, phone = $4, updated_at = CURRENT_TIMESTAMP
		`, v.Plate1, v.Plate2, v.Driver, v.Phone)
		if err != nil {
			return fmt.Errorf("import vehicles: %w", err)
		}
	}

	// Invoices keep their item linkage through an old-id to new-id map
	idMap := make(map[int]int, len(snap.Invoices))
	for _, v := range snap.Invoices {
		if mode == ImportModeMerge {
			var exists bool
			err := tx.QueryRow(ctx, `
				SELECT EXISTS (
					SELECT 1 FROM invoices
					WHERE invoice_no = $1 AND date_iso = $2 AND customer = $3
				)
			`, v.InvoiceNo, v.DateISO, v.Customer).Scan(&exists)
			if err != nil {
				return fmt.Errorf("probe invoice: %w", err)
			}
			if exists {
				continue
			}
		}

		var newID int
		err := tx.QueryRow(ctx, `
			INSERT INTO invoices (invoice_no, customer, date, date_iso, category, location,
				total_qty, total_weight, total_amount, filename, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, v.InvoiceNo, v.Customer, v.Date, v.DateISO, v.Category, v.Location,
			v.TotalQty, v.TotalWeight, v.TotalAmount, v.Filename, v.CreatedAt,
		).Scan(&newID)
		if err != nil {
			return fmt.Errorf("import invoices: %w", err)
		}
		idMap[v.ID] = newID
	}

	for _, v := range snap.Items {
		newID, ok := idMap[v.InvoiceID]
		if !ok {
			// Parent was skipped in merge mode, or dangling in the snapshot
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO invoice_items (invoice_id, product_name, spec_jin, qty, weight, price, amount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, newID, v.ProductName, v.SpecJin, v.Qty, v.Weight, v.Price, v.Amount, v.CreatedAt)
		if err != nil {
			return fmt.Errorf("import invoice items: %w", err)
		}
	}

	if mode == ImportModeReplace {
		for _, v := range snap.Audit {
			invoiceID := v.InvoiceID
			if mapped, ok := idMap[v.InvoiceID]; ok {
				invoiceID = mapped
			}
			_, err := tx.Exec(ctx, `
				INSERT INTO invoice_audit (invoice_id, action, detail, created_at)
				VALUES ($1, $2, $3, $4)
			`, invoiceID, v.Action, v.Detail, v.CreatedAt)
			if err != nil {
				return fmt.Errorf("import audit: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	cache.InvalidateReferences(ctx)
	s.log.Info().Str("mode", mode).
		Int("invoices", len(snap.Invoices)).
		Int("customers", len(snap.Customers)).
		Msg("backup imported")
	return nil
}

// upload ships the snapshot JSON to the configured S3-compatible bucket.
func (s *BackupService) upload(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Backup.AccessKey,
			s.cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Backup.Region),
	)
	if err != nil {
		return fmt.Errorf("configure backup client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.cfg.Backup.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Backup.Endpoint)
		}
	})

	key := fmt.Sprintf("backups/kaidan-%s.json", timeutil.Now().Format("20060102-150405"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Backup.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put snapshot object: %w", err)
	}

	s.log.Info().Str("key", key).Int("bytes", len(data)).Msg("snapshot uploaded")
	return nil
}
