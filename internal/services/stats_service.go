package services

import (
	"context"

	"kaidan-backend/internal/models"
	"kaidan-backend/internal/repositories"
	"kaidan-backend/internal/stats"
	"kaidan-backend/internal/timeutil"
)

// StatsService loads the stored invoices and items and runs the pure
// aggregators over them.
type StatsService struct {
	repo *repositories.InvoiceRepository
}

func NewStatsService(repo *repositories.InvoiceRepository) *StatsService {
	return &StatsService{repo: repo}
}

// StatsQuery is the parsed query string of the stats endpoints.
type StatsQuery struct {
	Mode     string
	Year     int
	Month    int
	Quarter  int
	Keyword  string
	Customer string
	Location string
	Province string
}

func (q StatsQuery) window() stats.Window {
	return stats.WindowForMode(q.Mode, q.Year, q.Month, q.Quarter, timeutil.Now())
}

// InvoiceReport is the by-invoice report payload.
type InvoiceReport struct {
	Window   stats.Window     `json:"window"`
	Rows     []models.Invoice `json:"rows"`
	Sums     stats.Sums       `json:"sums"`
	RowCount int              `json:"row_count"`
}

func (s *StatsService) ByInvoice(ctx context.Context, q StatsQuery) (*InvoiceReport, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	w := q.window()
	rows, sums := stats.QueryInvoices(invoices, stats.QueryFilter{
		Window:   w,
		Keyword:  q.Keyword,
		Customer: q.Customer,
		Location: q.Location,
		Province: q.Province,
	})
	return &InvoiceReport{Window: w, Rows: rows, Sums: sums, RowCount: len(rows)}, nil
}

// CustomerReport is the by-customer report payload.
type CustomerReport struct {
	Window stats.Window        `json:"window"`
	Rows   []stats.CustomerRow `json:"rows"`
	Sums   stats.Sums          `json:"sums"`
}

func (s *StatsService) ByCustomer(ctx context.Context, q StatsQuery) (*CustomerReport, error) {
	invoices, items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	w := q.window()
	rows, sums := stats.ByCustomer(items, invoices, w)
	return &CustomerReport{Window: w, Rows: rows, Sums: sums}, nil
}

// RegionReport is the by-region report payload.
type RegionReport struct {
	Window      stats.Window      `json:"window"`
	ByProvince  bool              `json:"by_province"`
	Rows        []stats.RegionRow `json:"rows"`
	TotalAmount float64           `json:"total_amount"`
}

func (s *StatsService) ByRegion(ctx context.Context, q StatsQuery, byProvince bool) (*RegionReport, error) {
	invoices, items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	w := q.window()
	rows, total := stats.ByRegion(items, invoices, w, byProvince)
	return &RegionReport{Window: w, ByProvince: byProvince, Rows: rows, TotalAmount: total}, nil
}

func (s *StatsService) load(ctx context.Context) ([]models.Invoice, []models.InvoiceItem, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, nil, err
	}
	return invoices, items, nil
}
