package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"kaidan-backend/internal/category"
	"kaidan-backend/internal/metrics"
	"kaidan-backend/internal/models"
	"kaidan-backend/internal/numeric"
	"kaidan-backend/internal/reconcile"
	"kaidan-backend/internal/repositories"
	"kaidan-backend/internal/timeutil"
)

// Finalize validation errors, surfaced as 400s.
var (
	ErrInvalidInvoiceNo = errors.New("单号必须为正整数")
	ErrNoItems          = errors.New("至少需要一行产品")
	ErrTooManyItems     = fmt.Errorf("最多%d行产品", reconcile.MaxLines)
)

// InvoiceService owns the slip lifecycle: finalize, list, edit, delete
// and the audit trail. Finalizes are serialized so concurrent submits
// cannot interleave the invoice-number bump.
type InvoiceService struct {
	repo      *repositories.InvoiceRepository
	reference *ReferenceService
	learner   *LearnerService
	log       zerolog.Logger

	finalizeMu sync.Mutex
}

func NewInvoiceService(
	repo *repositories.InvoiceRepository,
	reference *ReferenceService,
	learner *LearnerService,
	log zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		repo:      repo,
		reference: reference,
		learner:   learner,
		log:       log,
	}
}

// Finalize validates and persists one slip: rows are reconciled, blanks
// derived, totals and category resolved, the invoice written atomically
// with its items and audit entry, and the learner run afterwards.
// Learner failures come back as warnings, never as an error.
func (s *InvoiceService) Finalize(ctx context.Context, req *models.FinalizeInvoiceRequest) (*models.FinalizeInvoiceResponse, error) {
	s.finalizeMu.Lock()
	defer s.finalizeMu.Unlock()

	if req.InvoiceNo <= 0 {
		return nil, ErrInvalidInvoiceNo
	}

	products, err := s.reference.Products(ctx)
	if err != nil {
		return nil, err
	}

	// Reconcile and keep only rows that carry any text
	var lines []*reconcile.Line
	var items []models.SlipItem
	for _, it := range req.Items {
		line := reconcile.NewLineFromValues(it.Name, it.Spec, it.Count, it.Weight, it.Price, it.Amount)
		if line.Empty() {
			continue
		}
		line.Recalc()
		lines = append(lines, line)
		items = append(items, models.SlipItem{
			Name:   line.Product.Text,
			Spec:   line.Spec.Text,
			Count:  line.Count.Text,
			Weight: line.Weight.Text,
			Price:  line.Price.Text,
			Amount: line.Amount.Text,
		})
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if len(items) > reconcile.MaxLines {
		return nil, ErrTooManyItems
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = timeutil.TodayDisplay()
	}
	date = timeutil.FormatDateInput(date)

	totals := reconcile.Sum(lines)
	summary := totals.Summary(req.Summary)
	cat := category.Resolve(req.Category, items, products)

	inv := &models.Invoice{
		InvoiceNo:   req.InvoiceNo,
		Customer:    strings.TrimSpace(req.Customer),
		Date:        date,
		DateISO:     timeutil.ParseDateISO(date),
		Category:    cat,
		Location:    strings.TrimSpace(req.Location),
		TotalQty:    totals.Qty,
		TotalWeight: totals.Weight,
		TotalAmount: totals.Amount,
	}
	inv.Filename = slipFilename(inv)

	dbItems := make([]models.InvoiceItem, len(items))
	for i, it := range items {
		dbItems[i] = models.InvoiceItem{
			ProductName: it.Name,
			SpecJin:     optFloat(it.Spec),
			Qty:         optFloat(it.Count),
			Weight:      optFloat(it.Weight),
			Price:       optFloat(it.Price),
			Amount:      optFloat(it.Amount),
		}
	}

	auditDetail := fmt.Sprintf("单号%d 客户%s 共%.0f件 %.3f吨 合计%.0f元",
		inv.InvoiceNo, inv.Customer, inv.TotalQty, inv.TotalWeight, inv.TotalAmount)
	if err := s.repo.Create(ctx, inv, dbItems, auditDetail); err != nil {
		return nil, fmt.Errorf("persist invoice: %w", err)
	}
	metrics.InvoicesFinalizedTotal.Inc()

	warnings := s.learner.Learn(ctx, LearnInput{
		Customer: req.Customer,
		Location: req.Location,
		Plate1:   req.Plate1,
		Plate2:   req.Plate2,
		Driver:   req.Driver,
		Phone:    req.Phone,
		Items:    items,
	})

	s.log.Info().
		Int("invoice_no", inv.InvoiceNo).
		Str("customer", inv.Customer).
		Float64("amount", inv.TotalAmount).
		Int("warnings", len(warnings)).
		Msg("invoice finalized")

	return &models.FinalizeInvoiceResponse{
		Invoice:  inv,
		Filename: inv.Filename,
		Summary:  summary,
		Warnings: warnings,
	}, nil
}

func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, id int) (*models.InvoiceWithItems, error) {
	return s.repo.GetWithItems(ctx, id)
}

// Update edits a stored header and appends the 修改 audit record.
func (s *InvoiceService) Update(ctx context.Context, id int, req *models.UpdateInvoiceRequest) error {
	old, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	detail := fmt.Sprintf("单号%d %s→%s 客户%s→%s 合计%.0f→%.0f元",
		old.InvoiceNo, old.Date, timeutil.FormatDateInput(req.Date),
		old.Customer, req.Customer, old.TotalAmount, req.TotalAmount)
	req.Date = timeutil.FormatDateInput(req.Date)
	return s.repo.UpdateHeader(ctx, id, req, detail)
}

// Delete removes an invoice and appends the 删除 audit record carrying a
// snapshot of the deleted header.
func (s *InvoiceService) Delete(ctx context.Context, id int) error {
	old, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	detail := fmt.Sprintf("单号%d 客户%s %s 合计%.0f元",
		old.InvoiceNo, old.Customer, old.Date, old.TotalAmount)
	return s.repo.Delete(ctx, id, detail)
}

func (s *InvoiceService) Audit(ctx context.Context, limit int) ([]models.AuditEntryWithInvoice, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListAudit(ctx, limit)
}

// slipFilename builds the export filename from the slip header.
func slipFilename(inv *models.Invoice) string {
	parts := []string{
		fmt.Sprintf("%d", inv.InvoiceNo),
		inv.Category,
		inv.Date,
		inv.Location,
		inv.Customer,
		fmt.Sprintf("%.0f件", inv.TotalQty),
		fmt.Sprintf("%.3f吨", inv.TotalWeight),
		fmt.Sprintf("%.0f元", inv.TotalAmount),
	}
	var kept []string
	for _, p := range parts {
		p = sanitizeFilePart(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "-") + ".pdf"
}

func sanitizeFilePart(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}

// optFloat parses a cell text to a nullable column value. Two parses
// with distinct fallbacks distinguish "parsed to -1" from "unparsable".
func optFloat(text string) *float64 {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	a := numeric.ParseFloat(text, -1)
	b := numeric.ParseFloat(text, -2)
	if a == -1 && b == -2 {
		return nil
	}
	return &a
}
