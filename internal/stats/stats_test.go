package stats

import (
	"math"
	"testing"
	"time"

	"kaidan-backend/internal/models"
)

func f(v float64) *float64 { return &v }

func sampleData() ([]models.Invoice, []models.InvoiceItem) {
	invoices := []models.Invoice{
		{ID: 1, InvoiceNo: 101, Customer: "刘", Location: "长春", DateISO: "2025-01-03",
			TotalQty: 10, TotalWeight: 1.5, TotalAmount: 100},
		{ID: 2, InvoiceNo: 102, Customer: "张", Location: "成都市", DateISO: "2025-02-10",
			TotalQty: 30, TotalWeight: 4.5, TotalAmount: 300},
		{ID: 3, InvoiceNo: 103, Customer: "", Location: "", DateISO: "2024-12-30",
			TotalQty: 5, TotalWeight: 0.5, TotalAmount: 50},
	}
	items := []models.InvoiceItem{
		{ID: 1, InvoiceID: 1, ProductName: "琵琶腿", Qty: f(10), Weight: f(1.5), Amount: f(100)},
		{ID: 2, InvoiceID: 2, ProductName: "鸡爪", Qty: f(20), Weight: f(3), Amount: f(200)},
		{ID: 3, InvoiceID: 2, ProductName: "鸡胗", Qty: f(10), Weight: f(1.5), Amount: f(100)},
		{ID: 4, InvoiceID: 3, ProductName: "大胸", Qty: f(5), Weight: f(0.5), Amount: f(50)},
	}
	return invoices, items
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestQueryInvoicesSortAndSums(t *testing.T) {
	invoices, _ := sampleData()
	rows, sums := QueryInvoices(invoices, QueryFilter{})
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	// date_iso descending
	if rows[0].ID != 2 || rows[1].ID != 1 || rows[2].ID != 3 {
		t.Errorf("order = %d,%d,%d, want 2,1,3", rows[0].ID, rows[1].ID, rows[2].ID)
	}
	if !almost(sums.Qty, 45) || !almost(sums.Weight, 6.5) || !almost(sums.Amount, 450) {
		t.Errorf("sums = %+v", sums)
	}
}

func TestQueryInvoicesFilters(t *testing.T) {
	invoices, _ := sampleData()

	rows, _ := QueryInvoices(invoices, QueryFilter{Keyword: "102"})
	if len(rows) != 1 || rows[0].ID != 2 {
		t.Errorf("keyword 102: got %d rows", len(rows))
	}
	rows, _ = QueryInvoices(invoices, QueryFilter{Keyword: "刘长春"})
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Errorf("keyword runs over the concatenated fields, got %d rows", len(rows))
	}
	rows, _ = QueryInvoices(invoices, QueryFilter{Customer: "刘"})
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Errorf("customer filter: got %d rows", len(rows))
	}
	rows, _ = QueryInvoices(invoices, QueryFilter{Province: "四川"})
	if len(rows) != 1 || rows[0].ID != 2 {
		t.Errorf("province filter: got %d rows", len(rows))
	}
	rows, sums := QueryInvoices(invoices, QueryFilter{
		Window: Window{Start: "2025-01-01", End: "2025-12-31"},
	})
	if len(rows) != 2 || !almost(sums.Amount, 400) {
		t.Errorf("window filter: rows=%d amount=%v", len(rows), sums.Amount)
	}
}

func TestWindowExcludesUndatedWhenBounded(t *testing.T) {
	w := Window{Start: "2025-01-01", End: "2025-12-31"}
	if w.Contains("") {
		t.Error("bounded window must exclude empty dates")
	}
	if !(Window{}).Contains("") {
		t.Error("unbounded window must include everything")
	}
}

func TestByCustomerPercentages(t *testing.T) {
	invoices, items := sampleData()
	w := Window{Start: "2025-01-01", End: "2025-12-31"}
	rows, grand := ByCustomer(items, invoices, w)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	liu, zhang := rows[0], rows[1]
	if liu.Customer != "刘" || zhang.Customer != "张" {
		t.Fatalf("group order = %q,%q", liu.Customer, zhang.Customer)
	}
	if !almost(liu.Amount, 100) || !almost(zhang.Amount, 300) {
		t.Errorf("amounts = %v,%v", liu.Amount, zhang.Amount)
	}
	if !almost(liu.PctAmount, 25) || !almost(zhang.PctAmount, 75) {
		t.Errorf("pct = %v,%v, want 25,75", liu.PctAmount, zhang.PctAmount)
	}
	if liu.InvoiceCount != 1 || zhang.InvoiceCount != 1 {
		t.Errorf("invoice counts = %d,%d", liu.InvoiceCount, zhang.InvoiceCount)
	}
	if !almost(grand.Amount, 400) {
		t.Errorf("grand amount = %v", grand.Amount)
	}
}

func TestByCustomerUnfilled(t *testing.T) {
	invoices, items := sampleData()
	rows, _ := ByCustomer(items, invoices, Window{})
	var found bool
	for _, r := range rows {
		if r.Customer == UnfilledCustomer {
			found = true
			if !almost(r.Amount, 50) {
				t.Errorf("unfilled amount = %v", r.Amount)
			}
		}
	}
	if !found {
		t.Error("empty customer must group under 未填")
	}
}

func TestByRegion(t *testing.T) {
	invoices, items := sampleData()
	w := Window{Start: "2025-01-01", End: "2025-12-31"}

	rows, total := ByRegion(items, invoices, w, false)
	if len(rows) != 2 || !almost(total, 400) {
		t.Fatalf("city rows=%d total=%v", len(rows), total)
	}
	if rows[0].Region != "长春" || rows[1].Region != "成都市" {
		t.Errorf("city groups = %q,%q", rows[0].Region, rows[1].Region)
	}
	if !almost(rows[1].Pct, 75) {
		t.Errorf("成都市 pct = %v, want 75", rows[1].Pct)
	}

	provRows, _ := ByRegion(items, invoices, w, true)
	byName := map[string]float64{}
	for _, r := range provRows {
		byName[r.Region] = r.Amount
	}
	if !almost(byName["吉林"], 100) || !almost(byName["四川"], 300) {
		t.Errorf("province amounts = %v", byName)
	}
}

func TestWindowForMode(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	if w := WindowForMode(ModeAllTime, 0, 0, 0, now); w != (Window{}) {
		t.Errorf("all time = %+v", w)
	}
	if w := WindowForMode(ModeLastMonth, 0, 0, 0, now); w.Start != "2025-02-28" || w.End != "2025-03-31" {
		t.Errorf("last month = %+v", w)
	}
	if w := WindowForMode(ModeByMonth, 2025, 2, 0, now); w.Start != "2025-02-01" || w.End != "2025-02-28" {
		t.Errorf("by month = %+v", w)
	}
	if w := WindowForMode(ModeByQuarter, 2025, 0, 2, now); w.Start != "2025-04-01" || w.End != "2025-06-30" {
		t.Errorf("by quarter = %+v", w)
	}
	if w := WindowForMode(ModeByYear, 2024, 0, 0, now); w.Start != "2024-01-01" || w.End != "2024-12-31" {
		t.Errorf("by year = %+v", w)
	}
}
