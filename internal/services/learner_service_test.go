package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"kaidan-backend/internal/models"
)

type fakeCustomerStore struct {
	rows    []*models.Customer
	filled  []string
	listErr error
}

func (f *fakeCustomerStore) List(ctx context.Context) ([]*models.Customer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeCustomerStore) Upsert(ctx context.Context, c *models.Customer) error {
	f.rows = append(f.rows, c)
	return nil
}

func (f *fakeCustomerStore) FillEmpty(ctx context.Context, name, location, province string) error {
	f.filled = append(f.filled, name)
	for _, c := range f.rows {
		if c.Name == name {
			if c.Location == "" {
				c.Location = location
			}
			if c.Province == "" {
				c.Province = province
			}
		}
	}
	return nil
}

type fakeProductStore struct {
	rows     []*models.Product
	inserted int
}

func (f *fakeProductStore) List(ctx context.Context) ([]*models.Product, error) {
	return f.rows, nil
}

func (f *fakeProductStore) InsertIfAbsent(ctx context.Context, p *models.Product) error {
	f.inserted++
	f.rows = append(f.rows, p)
	return nil
}

type fakeVehicleStore struct {
	rows   []*models.Vehicle
	filled []string
}

func (f *fakeVehicleStore) List(ctx context.Context) ([]*models.Vehicle, error) {
	return f.rows, nil
}

func (f *fakeVehicleStore) Upsert(ctx context.Context, v *models.Vehicle) error {
	f.rows = append(f.rows, v)
	return nil
}

func (f *fakeVehicleStore) FillEmpty(ctx context.Context, plate1, plate2, driver, phone string) error {
	f.filled = append(f.filled, plate1)
	for _, v := range f.rows {
		if v.Plate1 == plate1 {
			if v.Plate2 == "" {
				v.Plate2 = plate2
			}
			if v.Driver == "" {
				v.Driver = driver
			}
			if v.Phone == "" {
				v.Phone = phone
			}
		}
	}
	return nil
}

func newTestLearner(c *fakeCustomerStore, p *fakeProductStore, v *fakeVehicleStore) *LearnerService {
	return NewLearnerService(c, p, v, zerolog.Nop())
}

func TestLearnInsertsNewCustomerWithProvince(t *testing.T) {
	customers := &fakeCustomerStore{}
	l := newTestLearner(customers, &fakeProductStore{}, &fakeVehicleStore{})

	warnings := l.Learn(context.Background(), LearnInput{
		Customer: "刘正彬",
		Location: "成都",
	})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(customers.rows) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers.rows))
	}
	got := customers.rows[0]
	if got.Name != "刘正彬" || got.Location != "成都" || got.Province != "四川" {
		t.Errorf("unexpected customer row: %+v", got)
	}
}

func TestLearnFillsOnlyEmptyCustomerFields(t *testing.T) {
	customers := &fakeCustomerStore{
		rows: []*models.Customer{{Name: "刘正彬", Location: "绵阳", Province: "四川"}},
	}
	l := newTestLearner(customers, &fakeProductStore{}, &fakeVehicleStore{})

	l.Learn(context.Background(), LearnInput{Customer: "刘正彬", Location: "成都"})

	if len(customers.rows) != 1 {
		t.Fatalf("expected no new rows, got %d", len(customers.rows))
	}
	if customers.rows[0].Location != "绵阳" {
		t.Errorf("existing location overwritten: %q", customers.rows[0].Location)
	}
	if len(customers.filled) != 1 {
		t.Errorf("expected one fill attempt, got %d", len(customers.filled))
	}
}

func TestLearnMatchedCustomerWithoutLocationIsNoop(t *testing.T) {
	customers := &fakeCustomerStore{
		rows: []*models.Customer{{Name: "刘正彬", Location: "绵阳"}},
	}
	l := newTestLearner(customers, &fakeProductStore{}, &fakeVehicleStore{})

	l.Learn(context.Background(), LearnInput{Customer: "刘正彬"})

	if len(customers.filled) != 0 {
		t.Errorf("expected no fill without a location, got %v", customers.filled)
	}
}

func TestLearnProductsInsertOnly(t *testing.T) {
	spec := 22.0
	products := &fakeProductStore{
		rows: []*models.Product{{Name: "红毛", SpecJin: &spec}},
	}
	l := newTestLearner(&fakeCustomerStore{}, products, &fakeVehicleStore{})

	l.Learn(context.Background(), LearnInput{
		Items: []models.SlipItem{
			{Name: "红毛", Spec: "25"}, // known, spec must not change
			{Name: "白条", Spec: "18"},
			{Name: "白条", Spec: "20"}, // duplicate within the slip
			{Name: "", Spec: "10"},   // blank name skipped
			{Name: "鸡爪", Spec: "abc"},
		},
	})

	if products.inserted != 2 {
		t.Fatalf("expected 2 inserts, got %d", products.inserted)
	}
	if got := *products.rows[0].SpecJin; got != 22.0 {
		t.Errorf("known product spec changed to %v", got)
	}
	baitiao := products.rows[1]
	if baitiao.Name != "白条" || baitiao.SpecJin == nil || *baitiao.SpecJin != 18.0 {
		t.Errorf("unexpected inserted product: %+v", baitiao)
	}
	if jizhua := products.rows[2]; jizhua.SpecJin != nil {
		t.Errorf("unparsable spec should stay nil, got %v", *jizhua.SpecJin)
	}
}

func TestLearnVehicleKeyedOnPrimaryPlate(t *testing.T) {
	vehicles := &fakeVehicleStore{
		rows: []*models.Vehicle{{Plate1: "川A12345", Driver: "老张"}},
	}
	l := newTestLearner(&fakeCustomerStore{}, &fakeProductStore{}, vehicles)

	// Existing plate fills gaps only.
	l.Learn(context.Background(), LearnInput{
		Plate1: "川A12345", Driver: "老王", Phone: "13800000000",
	})
	if len(vehicles.rows) != 1 {
		t.Fatalf("expected no new vehicle, got %d rows", len(vehicles.rows))
	}
	if vehicles.rows[0].Driver != "老张" {
		t.Errorf("existing driver overwritten: %q", vehicles.rows[0].Driver)
	}
	if vehicles.rows[0].Phone != "13800000000" {
		t.Errorf("empty phone not filled: %q", vehicles.rows[0].Phone)
	}

	// No primary plate means nothing to learn.
	l.Learn(context.Background(), LearnInput{Plate2: "挂B6789", Driver: "老李"})
	if len(vehicles.rows) != 1 {
		t.Errorf("vehicle learned without a primary plate")
	}

	// Fresh plate inserts.
	l.Learn(context.Background(), LearnInput{Plate1: "川B88888"})
	if len(vehicles.rows) != 2 {
		t.Errorf("expected new vehicle row, got %d", len(vehicles.rows))
	}
}

func TestLearnSubstringNamedCustomerIsNewRow(t *testing.T) {
	customers := &fakeCustomerStore{
		rows: []*models.Customer{{Name: "刘备商贸有限公司", Location: "绵阳", Province: "四川"}},
	}
	l := newTestLearner(customers, &fakeProductStore{}, &fakeVehicleStore{})

	// 刘备商贸 is a substring of the existing name. Auto-fill may treat
	// that as a hit; uniqueness must not.
	l.Learn(context.Background(), LearnInput{Customer: "刘备商贸", Location: "成都"})

	if len(customers.rows) != 2 {
		t.Fatalf("expected new customer row, got %d rows (filled=%v)", len(customers.rows), customers.filled)
	}
	added := customers.rows[1]
	if added.Name != "刘备商贸" || added.Location != "成都" || added.Province != "四川" {
		t.Errorf("unexpected inserted customer: %+v", added)
	}
	if customers.rows[0].Location != "绵阳" {
		t.Errorf("existing row touched: %+v", customers.rows[0])
	}
	if len(customers.filled) != 0 {
		t.Errorf("fill ran against the wrong row: %v", customers.filled)
	}
}

func TestLearnPrefixPlateIsNewVehicle(t *testing.T) {
	vehicles := &fakeVehicleStore{
		rows: []*models.Vehicle{{Plate1: "川A123456", Driver: "老张"}},
	}
	l := newTestLearner(&fakeCustomerStore{}, &fakeProductStore{}, vehicles)

	l.Learn(context.Background(), LearnInput{Plate1: "川A12345", Driver: "老王"})

	if len(vehicles.rows) != 2 {
		t.Fatalf("expected new vehicle row, got %d rows (filled=%v)", len(vehicles.rows), vehicles.filled)
	}
	added := vehicles.rows[1]
	if added.Plate1 != "川A12345" || added.Driver != "老王" {
		t.Errorf("unexpected inserted vehicle: %+v", added)
	}
	if vehicles.rows[0].Driver != "老张" {
		t.Errorf("existing vehicle touched: %+v", vehicles.rows[0])
	}
	if len(vehicles.filled) != 0 {
		t.Errorf("fill ran against the wrong row: %v", vehicles.filled)
	}
}

func TestLearnTwiceCreatesNoDuplicates(t *testing.T) {
	customers := &fakeCustomerStore{}
	products := &fakeProductStore{}
	vehicles := &fakeVehicleStore{}
	l := newTestLearner(customers, products, vehicles)

	in := LearnInput{
		Customer: "刘正彬",
		Location: "成都",
		Plate1:   "川A12345",
		Driver:   "老张",
		Items:    []models.SlipItem{{Name: "红毛", Spec: "22"}},
	}
	l.Learn(context.Background(), in)
	l.Learn(context.Background(), in)

	if len(customers.rows) != 1 {
		t.Errorf("duplicate customer rows: %d", len(customers.rows))
	}
	if products.inserted != 1 {
		t.Errorf("duplicate product inserts: %d", products.inserted)
	}
	if len(vehicles.rows) != 1 {
		t.Errorf("duplicate vehicle rows: %d", len(vehicles.rows))
	}
}

func TestLearnFailuresAreIsolatedWarnings(t *testing.T) {
	customers := &fakeCustomerStore{listErr: errors.New("connection refused")}
	products := &fakeProductStore{}
	l := newTestLearner(customers, products, &fakeVehicleStore{})

	warnings := l.Learn(context.Background(), LearnInput{
		Customer: "刘正彬",
		Items:    []models.SlipItem{{Name: "白条", Spec: "18"}},
	})

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !strings.HasPrefix(warnings[0], "客户资料未更新") {
		t.Errorf("unexpected warning text: %q", warnings[0])
	}
	if products.inserted != 1 {
		t.Errorf("product learn should run despite customer failure")
	}
}

func TestLearnBlankInputIsQuiet(t *testing.T) {
	customers := &fakeCustomerStore{}
	vehicles := &fakeVehicleStore{}
	l := newTestLearner(customers, &fakeProductStore{}, vehicles)

	warnings := l.Learn(context.Background(), LearnInput{})
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(customers.rows) != 0 || len(vehicles.rows) != 0 {
		t.Errorf("blank input must not create rows")
	}
}
