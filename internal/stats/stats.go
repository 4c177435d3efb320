// Package stats derives the three slip reports from stored invoices and
// line items. All aggregation is pure: callers load the rows, this
// package filters, groups and sums them.
package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"kaidan-backend/internal/models"
	"kaidan-backend/internal/region"
	"kaidan-backend/internal/timeutil"
)

// Window is an inclusive ISO-date range. Zero value means unbounded.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether an invoice date falls inside the window.
// A bounded window excludes invoices with no parsable date.
func (w Window) Contains(dateISO string) bool {
	if w.Start == "" && w.End == "" {
		return true
	}
	return dateISO != "" && dateISO >= w.Start && dateISO <= w.End
}

// Report window modes, matching the selector values of the stats tab.
const (
	ModeAllTime     = "所有时间"
	ModeLastMonth   = "最近1个月"
	ModeLast3Months = "最近3个月"
	ModeLast6Months = "最近6个月"
	ModeLastYear    = "最近1年"
	ModeByYear      = "按年"
	ModeByMonth     = "按月"
	ModeByQuarter   = "按季度"
)

// WindowForMode computes the report window for a selector mode relative
// to now. Unknown modes fall back to the current month so far.
func WindowForMode(mode string, year, month, quarter int, now time.Time) Window {
	iso := func(t time.Time) string { return t.Format(timeutil.ISOLayout) }
	switch mode {
	case ModeAllTime:
		return Window{}
	case ModeLastMonth:
		return Window{Start: iso(timeutil.AddMonths(now, -1)), End: iso(now)}
	case ModeLast3Months:
		return Window{Start: iso(timeutil.AddMonths(now, -3)), End: iso(now)}
	case ModeLast6Months:
		return Window{Start: iso(timeutil.AddMonths(now, -6)), End: iso(now)}
	case ModeLastYear:
		return Window{Start: iso(timeutil.AddMonths(now, -12)), End: iso(now)}
	case ModeByYear:
		if year == 0 {
			year = now.Year()
		}
		start, _ := timeutil.MonthRange(year, 1)
		_, end := timeutil.MonthRange(year, 12)
		return Window{Start: iso(start), End: iso(end)}
	case ModeByMonth:
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
		start, end := timeutil.MonthRange(year, month)
		return Window{Start: iso(start), End: iso(end)}
	case ModeByQuarter:
		if year == 0 {
			year = now.Year()
		}
		if quarter == 0 {
			quarter = (int(now.Month())-1)/3 + 1
		}
		start, end := timeutil.QuarterRange(year, quarter)
		return Window{Start: iso(start), End: iso(end)}
	default:
		start, _ := timeutil.MonthRange(now.Year(), int(now.Month()))
		return Window{Start: iso(start), End: iso(now)}
	}
}

// Sums is the cross-row aggregate attached to every report.
type Sums struct {
	Qty    float64 `json:"qty"`
	Weight float64 `json:"weight"`
	Amount float64 `json:"amount"`
}

// QueryFilter narrows the by-invoice report.
type QueryFilter struct {
	Window   Window
	Keyword  string // substring over customer+location+invoice_no concatenation
	Customer string // customer substring
	Location string // location substring
	Province string // resolved-province equality, "" disables
}

// QueryInvoices filters and sorts stored invoices (date_iso descending,
// stable) and returns them with their sums.
func QueryInvoices(invoices []models.Invoice, f QueryFilter) ([]models.Invoice, Sums) {
	rows := make([]models.Invoice, 0, len(invoices))
	var sums Sums
	for _, inv := range invoices {
		if !f.Window.Contains(inv.DateISO) {
			continue
		}
		if f.Customer != "" && !strings.Contains(inv.Customer, f.Customer) {
			continue
		}
		if f.Location != "" && !strings.Contains(inv.Location, f.Location) {
			continue
		}
		if f.Keyword != "" {
			blob := inv.Customer + inv.Location + strconv.Itoa(inv.InvoiceNo)
			if !strings.Contains(blob, f.Keyword) {
				continue
			}
		}
		if f.Province != "" && region.Resolve(inv.Location) != f.Province {
			continue
		}
		rows = append(rows, inv)
		sums.Qty += inv.TotalQty
		sums.Weight += inv.TotalWeight
		sums.Amount += inv.TotalAmount
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DateISO > rows[j].DateISO
	})
	return rows, sums
}

// UnfilledCustomer labels items whose invoice has no customer.
const UnfilledCustomer = "未填"

// CustomerRow is one group of the by-customer report. Percentages are of
// the grand total across all groups.
type CustomerRow struct {
	Customer     string  `json:"customer"`
	Qty          float64 `json:"qty"`
	Weight       float64 `json:"weight"`
	Amount       float64 `json:"amount"`
	InvoiceCount int     `json:"invoice_count"`
	PctQty       float64 `json:"pct_qty"`
	PctWeight    float64 `json:"pct_weight"`
	PctAmount    float64 `json:"pct_amount"`
}

// ByCustomer groups line items by their parent invoice's customer.
// Groups appear in first-seen item order.
func ByCustomer(items []models.InvoiceItem, invoices []models.Invoice, w Window) ([]CustomerRow, Sums) {
	invByID := indexInvoices(invoices)

	var grand Sums
	index := make(map[string]int)
	rows := []CustomerRow{}
	seen := make(map[string]map[int]bool)

	for _, it := range items {
		inv, ok := invByID[it.InvoiceID]
		if !ok || !w.Contains(inv.DateISO) {
			continue
		}
		cust := inv.Customer
		if cust == "" {
			cust = UnfilledCustomer
		}
		i, ok := index[cust]
		if !ok {
			i = len(rows)
			index[cust] = i
			rows = append(rows, CustomerRow{Customer: cust})
			seen[cust] = make(map[int]bool)
		}
		qty, weight, amount := deref(it.Qty), deref(it.Weight), deref(it.Amount)
		rows[i].Qty += qty
		rows[i].Weight += weight
		rows[i].Amount += amount
		seen[cust][it.InvoiceID] = true
		grand.Qty += qty
		grand.Weight += weight
		grand.Amount += amount
	}

	for i := range rows {
		rows[i].InvoiceCount = len(seen[rows[i].Customer])
		rows[i].PctQty = pct(rows[i].Qty, grand.Qty)
		rows[i].PctWeight = pct(rows[i].Weight, grand.Weight)
		rows[i].PctAmount = pct(rows[i].Amount, grand.Amount)
	}
	return rows, grand
}

// RegionRow is one group of the by-region report (amounts only).
type RegionRow struct {
	Region string  `json:"region"`
	Amount float64 `json:"amount"`
	Pct    float64 `json:"pct"`
}

// ByRegion groups item amounts by the invoice location, either raw
// (city view) or resolved to a province. Groups appear in first-seen
// order; empty regions render as unknown in the province view and as an
// empty label in the city view, matching the source data.
func ByRegion(items []models.InvoiceItem, invoices []models.Invoice, w Window, byProvince bool) ([]RegionRow, float64) {
	invByID := indexInvoices(invoices)

	var total float64
	index := make(map[string]int)
	rows := []RegionRow{}

	for _, it := range items {
		inv, ok := invByID[it.InvoiceID]
		if !ok || !w.Contains(inv.DateISO) {
			continue
		}
		key := inv.Location
		if byProvince {
			key = region.Resolve(inv.Location)
		}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, RegionRow{Region: key})
		}
		amount := deref(it.Amount)
		rows[i].Amount += amount
		total += amount
	}

	for i := range rows {
		rows[i].Pct = pct(rows[i].Amount, total)
	}
	return rows, total
}

func indexInvoices(invoices []models.Invoice) map[int]models.Invoice {
	m := make(map[int]models.Invoice, len(invoices))
	for _, inv := range invoices {
		m[inv.ID] = inv
	}
	return m
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func pct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
