package match

import (
	"testing"

	"kaidan-backend/internal/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"刘 正彬", "刘正彬"},
		{"（成都）刘氏", "成都刘氏"},
		{"红毛：7只", "红毛7只"},
		{"a-b.c", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"刘 正彬", "（成都）刘氏", "plain", "红毛：7只(22斤/件)"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCustomerExactBeforeContainment(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "刘正彬批发部"},
		{ID: 2, Name: "刘正彬"},
	}
	got := Customer("刘正彬", customers)
	if got == nil || got.ID != 2 {
		t.Fatalf("expected exact match id=2, got %+v", got)
	}
}

func TestCustomerContainmentFirstInTableOrder(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "成都刘氏食品"},
		{ID: 2, Name: "宜宾刘氏商贸"},
	}
	got := Customer("刘氏", customers)
	if got == nil || got.ID != 1 {
		t.Fatalf("expected first containment match id=1, got %+v", got)
	}
}

func TestCustomerNoMatch(t *testing.T) {
	customers := []models.Customer{{ID: 1, Name: "张三"}}
	if got := Customer("李四", customers); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
	if got := Customer("", customers); got != nil {
		t.Errorf("empty name must not match, got %+v", got)
	}
}

func TestVehicleProbeOrder(t *testing.T) {
	vehicles := []models.Vehicle{
		{ID: 1, Plate1: "川A11111", Driver: "王五"},
		{ID: 2, Plate1: "贵B22222", Driver: "张全"},
	}
	// Plate beats driver even though the driver probe would hit row 2.
	got := Vehicle("川A11111", "", "张全", "", vehicles)
	if got == nil || got.ID != 1 {
		t.Fatalf("expected plate1 match id=1, got %+v", got)
	}
	got = Vehicle("", "", "张全", "", vehicles)
	if got == nil || got.ID != 2 {
		t.Fatalf("expected driver match id=2, got %+v", got)
	}
}

func TestFillVehicleOnlyBlankFields(t *testing.T) {
	v := &models.Vehicle{Plate1: "川A11111", Plate2: "川A1挂", Driver: "王五", Phone: "13800000000"}
	plate1, plate2, driver, phone := "川A11111", "", "李四", ""
	FillVehicle(v, &plate1, &plate2, &driver, &phone)
	if plate2 != "川A1挂" || phone != "13800000000" {
		t.Errorf("blank fields not filled: plate2=%q phone=%q", plate2, phone)
	}
	if driver != "李四" {
		t.Errorf("typed driver overwritten: %q", driver)
	}
}

func TestProductLookup(t *testing.T) {
	spec := 22.0
	products := []models.Product{{ID: 1, Name: "红毛7只", SpecJin: &spec}}
	if got := Product("红毛7只", products); got == nil || got.ID != 1 {
		t.Fatalf("exact product lookup failed: %+v", got)
	}
	if got := Product("红毛", products); got != nil {
		t.Errorf("spec auto-fill lookup must be strict, got %+v", got)
	}
	if got := ProductByKey("红毛 7只", products); got == nil || got.ID != 1 {
		t.Fatalf("normalized product key lookup failed: %+v", got)
	}
}

func TestCustomerByKeyHasNoContainmentFallback(t *testing.T) {
	customers := []models.Customer{{ID: 1, Name: "刘备商贸有限公司"}}
	if got := CustomerByKey("刘备 商贸有限公司", customers); got == nil || got.ID != 1 {
		t.Fatalf("normalized key lookup failed: %+v", got)
	}
	if got := CustomerByKey("刘备商贸", customers); got != nil {
		t.Errorf("substring name must not match, got %+v", got)
	}
}

func TestVehicleByPlateExactOnly(t *testing.T) {
	vehicles := []models.Vehicle{{ID: 1, Plate1: "川A123456"}}
	if got := VehicleByPlate("川A123456 ", vehicles); got == nil || got.ID != 1 {
		t.Fatalf("stripped plate lookup failed: %+v", got)
	}
	if got := VehicleByPlate("川A12345", vehicles); got != nil {
		t.Errorf("prefix plate must not match, got %+v", got)
	}
}
