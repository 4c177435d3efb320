package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"kaidan-backend/internal/models"
	"kaidan-backend/internal/timeutil"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

const invoiceColumns = `id, invoice_no, customer, date, date_iso, category, location,
	total_qty, total_weight, total_amount, filename, created_at`

func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	inv := &models.Invoice{}
	err := row.Scan(
		&inv.ID, &inv.InvoiceNo, &inv.Customer, &inv.Date, &inv.DateISO,
		&inv.Category, &inv.Location, &inv.TotalQty, &inv.TotalWeight,
		&inv.TotalAmount, &inv.Filename, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Create persists the invoice, its items, a creation audit entry and the
// last_invoice_no high-water mark in one transaction.
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice, items []models.InvoiceItem, auditDetail string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO invoices (invoice_no, customer, date, date_iso, category, location,
			total_qty, total_weight, total_amount, filename)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`,
		inv.InvoiceNo, inv.Customer, inv.Date, inv.DateISO, inv.Category, inv.Location,
		inv.TotalQty, inv.TotalWeight, inv.TotalAmount, inv.Filename,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].InvoiceID = inv.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO invoice_items (invoice_id, product_name, spec_jin, qty, weight, price, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`,
			inv.ID, items[i].ProductName, items[i].SpecJin, items[i].Qty,
			items[i].Weight, items[i].Price, items[i].Amount,
		).Scan(&items[i].ID, &items[i].CreatedAt)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO invoice_audit (invoice_id, action, detail)
		VALUES ($1, $2, $3)
	`, inv.ID, models.AuditActionCreate, auditDetail)
	if err != nil {
		return err
	}

	// The next suggested invoice number never goes backwards
	_, err = tx.Exec(ctx, `
		UPDATE settings
		SET value = GREATEST(value::int, $1)::text, updated_at = CURRENT_TIMESTAMP
		WHERE key = $2
	`, inv.InvoiceNo, models.SettingLastInvoiceNo)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *InvoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return scanInvoice(row)
}

func (r *InvoiceRepository) GetWithItems(ctx context.Context, id int) (*models.InvoiceWithItems, error) {
	inv, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := r.itemsByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.InvoiceWithItems{Invoice: *inv, Items: items}, nil
}

// ListItems returns every stored line item, oldest first. The statistics
// aggregator groups them in memory.
func (r *InvoiceRepository) ListItems(ctx context.Context) ([]models.InvoiceItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, invoice_id, product_name, spec_jin, qty, weight, price, amount, created_at
		FROM invoice_items
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *InvoiceRepository) itemsByInvoice(ctx context.Context, invoiceID int) ([]models.InvoiceItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, invoice_id, product_name, spec_jin, qty, weight, price, amount, created_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]models.InvoiceItem, error) {
	var items []models.InvoiceItem
	for rows.Next() {
		var it models.InvoiceItem
		err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.ProductName, &it.SpecJin,
			&it.Qty, &it.Weight, &it.Price, &it.Amount, &it.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateHeader edits the stored header fields and appends an audit entry
// in the same transaction.
func (r *InvoiceRepository) UpdateHeader(ctx context.Context, id int, req *models.UpdateInvoiceRequest, auditDetail string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE invoices
		SET date = $1, date_iso = $2, customer = $3, location = $4,
			total_qty = $5, total_weight = $6, total_amount = $7
		WHERE id = $8
	`,
		req.Date, timeutil.ParseDateISO(req.Date), req.Customer, req.Location,
		req.TotalQty, req.TotalWeight, req.TotalAmount, id,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO invoice_audit (invoice_id, action, detail)
		VALUES ($1, $2, $3)
	`, id, models.AuditActionEdit, auditDetail)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the invoice (items cascade) and records a deletion
// audit entry carrying the snapshot detail.
func (r *InvoiceRepository) Delete(ctx context.Context, id int, auditDetail string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO invoice_audit (invoice_id, action, detail)
		VALUES ($1, $2, $3)
	`, id, models.AuditActionDelete, auditDetail)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListAudit returns the most recent audit entries joined to whatever
// header data still exists for their invoice.
func (r *InvoiceRepository) ListAudit(ctx context.Context, limit int) ([]models.AuditEntryWithInvoice, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT a.id, a.invoice_id, a.action, a.detail, a.created_at,
			COALESCE(i.invoice_no, 0), COALESCE(i.customer, '')
		FROM invoice_audit a
		LEFT JOIN invoices i ON i.id = a.invoice_id
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AuditEntryWithInvoice
	for rows.Next() {
		var e models.AuditEntryWithInvoice
		err := rows.Scan(
			&e.ID, &e.InvoiceID, &e.Action, &e.Detail, &e.CreatedAt,
			&e.InvoiceNo, &e.Customer,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
