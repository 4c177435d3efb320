package models

import "time"

// Invoice is a finalized slip snapshot. Totals are denormalized at
// finalize time; line items live in invoice_items.
type Invoice struct {
	ID          int       `json:"id"`
	InvoiceNo   int       `json:"invoice_no"`
	Customer    string    `json:"customer"`
	Date        string    `json:"date"`     // display form, "2025.1.3"
	DateISO     string    `json:"date_iso"` // sortable form, "2025-01-03"
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	TotalQty    float64   `json:"total_qty"`
	TotalWeight float64   `json:"total_weight"`
	TotalAmount float64   `json:"total_amount"`
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"created_at"`
}

// InvoiceItem is one persisted slip row. Numeric fields are nil when the
// source cell was blank or unparsable.
type InvoiceItem struct {
	ID          int       `json:"id"`
	InvoiceID   int       `json:"invoice_id"`
	ProductName string    `json:"product_name"`
	SpecJin     *float64  `json:"spec_jin"`
	Qty         *float64  `json:"qty"`
	Weight      *float64  `json:"weight"`
	Price       *float64  `json:"price"`
	Amount      *float64  `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuditEntry is an append-only record of an invoice lifecycle action.
type AuditEntry struct {
	ID        int       `json:"id"`
	InvoiceID int       `json:"invoice_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// Audit actions, matching the slip UI's wording.
const (
	AuditActionCreate = "新增"
	AuditActionEdit   = "修改"
	AuditActionDelete = "删除"
)

// AuditEntryWithInvoice joins an audit record to its invoice header for
// the audit log view.
type AuditEntryWithInvoice struct {
	AuditEntry
	InvoiceNo int    `json:"invoice_no"`
	Customer  string `json:"customer"`
}

// SlipItem carries one row's raw field texts between the form, the
// recognition collaborator and the finalize endpoint.
type SlipItem struct {
	Name   string `json:"name"`
	Spec   string `json:"spec"`
	Count  string `json:"count"`
	Weight string `json:"weight"`
	Price  string `json:"price"`
	Amount string `json:"amount"`
}

// FinalizeInvoiceRequest is the export-action payload.
type FinalizeInvoiceRequest struct {
	InvoiceNo int        `json:"invoice_no"`
	Customer  string     `json:"customer"`
	Date      string     `json:"date"`
	Location  string     `json:"location"`
	Plate1    string     `json:"plate1"`
	Plate2    string     `json:"plate2"`
	Driver    string     `json:"driver"`
	Phone     string     `json:"phone"`
	Summary   string     `json:"summary"`
	Category  string     `json:"category"` // selector value, 自动 resolves from products
	Items     []SlipItem `json:"items"`
}

// FinalizeInvoiceResponse reports the persisted invoice plus learner
// warnings; warnings never indicate a failed invoice write.
type FinalizeInvoiceResponse struct {
	Invoice  *Invoice `json:"invoice"`
	Filename string   `json:"filename"`
	Summary  string   `json:"summary"`
	Warnings []string `json:"warnings,omitempty"`
}

// UpdateInvoiceRequest edits a stored invoice header. Every edit appends
// an audit record.
type UpdateInvoiceRequest struct {
	Date        string  `json:"date"`
	Customer    string  `json:"customer"`
	Location    string  `json:"location"`
	TotalQty    float64 `json:"total_qty"`
	TotalWeight float64 `json:"total_weight"`
	TotalAmount float64 `json:"total_amount"`
}

// InvoiceWithItems bundles an invoice with its line items for the detail
// view and for document re-export.
type InvoiceWithItems struct {
	Invoice
	Items []InvoiceItem `json:"items"`
}
