package match

import (
	"strings"

	"kaidan-backend/internal/models"
)

// Customer finds the reference customer for a typed name: exact
// normalized-key equality first, then containment (the candidate's key
// containing the typed key). Returns nil when nothing matches.
func Customer(name string, customers []models.Customer) *models.Customer {
	key := Normalize(name)
	if key == "" {
		return nil
	}
	for i := range customers {
		if Normalize(customers[i].Name) == key {
			return &customers[i]
		}
	}
	for i := range customers {
		if strings.Contains(Normalize(customers[i].Name), key) {
			return &customers[i]
		}
	}
	return nil
}

// CustomerByKey finds a customer row by normalized-key equality only,
// with no containment fallback. This is the learner's uniqueness check:
// a name whose key is merely a substring of an existing key is a new
// customer, not a hit.
func CustomerByKey(name string, customers []models.Customer) *models.Customer {
	key := Normalize(name)
	if key == "" {
		return nil
	}
	for i := range customers {
		if Normalize(customers[i].Name) == key {
			return &customers[i]
		}
	}
	return nil
}

// VehicleField selects which vehicle column a probe value compares
// against.
type VehicleField int

const (
	VehiclePlate1 VehicleField = iota
	VehiclePlate2
	VehicleDriver
	VehiclePhone
)

func vehicleValue(v *models.Vehicle, f VehicleField) string {
	switch f {
	case VehiclePlate1:
		return v.Plate1
	case VehiclePlate2:
		return v.Plate2
	case VehicleDriver:
		return v.Driver
	default:
		return v.Phone
	}
}

// VehicleBy matches one column, exact-then-containment on the
// whitespace-stripped value.
func VehicleBy(value string, field VehicleField, vehicles []models.Vehicle) *models.Vehicle {
	key := NormalizeValue(value)
	if key == "" {
		return nil
	}
	for i := range vehicles {
		if NormalizeValue(vehicleValue(&vehicles[i], field)) == key {
			return &vehicles[i]
		}
	}
	for i := range vehicles {
		if strings.Contains(NormalizeValue(vehicleValue(&vehicles[i], field)), key) {
			return &vehicles[i]
		}
	}
	return nil
}

// VehicleByPlate finds a vehicle row by exact primary-plate equality on
// the whitespace-stripped value. Like CustomerByKey, this is the
// learner's uniqueness check: a plate that is a prefix of an existing
// plate identifies a different vehicle.
func VehicleByPlate(plate1 string, vehicles []models.Vehicle) *models.Vehicle {
	key := NormalizeValue(plate1)
	if key == "" {
		return nil
	}
	for i := range vehicles {
		if NormalizeValue(vehicles[i].Plate1) == key {
			return &vehicles[i]
		}
	}
	return nil
}

// Vehicle probes plate1, plate2, driver and phone in that priority order
// and returns the first hit.
func Vehicle(plate1, plate2, driver, phone string, vehicles []models.Vehicle) *models.Vehicle {
	if v := VehicleBy(plate1, VehiclePlate1, vehicles); v != nil {
		return v
	}
	if v := VehicleBy(plate2, VehiclePlate2, vehicles); v != nil {
		return v
	}
	if v := VehicleBy(driver, VehicleDriver, vehicles); v != nil {
		return v
	}
	return VehicleBy(phone, VehiclePhone, vehicles)
}

// FillVehicle copies matched vehicle columns into the blank header
// fields, leaving anything the user already typed alone.
func FillVehicle(v *models.Vehicle, plate1, plate2, driver, phone *string) {
	if strings.TrimSpace(*plate1) == "" && v.Plate1 != "" {
		*plate1 = v.Plate1
	}
	if strings.TrimSpace(*plate2) == "" && v.Plate2 != "" {
		*plate2 = v.Plate2
	}
	if strings.TrimSpace(*driver) == "" && v.Driver != "" {
		*driver = v.Driver
	}
	if strings.TrimSpace(*phone) == "" && v.Phone != "" {
		*phone = v.Phone
	}
}

// Product finds a product row by exact name. Spec auto-fill requires the
// strict key; normalized matching is reserved for learner dedup.
func Product(name string, products []models.Product) *models.Product {
	if name == "" {
		return nil
	}
	for i := range products {
		if products[i].Name == name {
			return &products[i]
		}
	}
	return nil
}

// ProductByKey finds a product row by normalized-key equality. Used by
// the learner's uniqueness check.
func ProductByKey(name string, products []models.Product) *models.Product {
	key := Normalize(name)
	if key == "" {
		return nil
	}
	for i := range products {
		if Normalize(products[i].Name) == key {
			return &products[i]
		}
	}
	return nil
}
