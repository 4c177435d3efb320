package models

import "time"

// Customer is a long-lived reference row keyed by name.
type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Province  string    `json:"province"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a reference row keyed by product name. SpecJin is nil when
// the spec has never been observed.
type Product struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	SpecJin   *float64  `json:"spec_jin"`
	Category  string    `json:"category"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vehicle is a reference row keyed by its primary plate.
type Vehicle struct {
	ID        int       `json:"id"`
	Plate1    string    `json:"plate1"`
	Plate2    string    `json:"plate2"`
	Driver    string    `json:"driver"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveCustomerRequest is the manual upsert payload from the customers tab.
type SaveCustomerRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Province string `json:"province"`
	Note     string `json:"note"`
}

// SaveProductRequest is the manual upsert payload from the products tab.
type SaveProductRequest struct {
	Name     string `json:"name"`
	SpecJin  string `json:"spec_jin"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

// SaveVehicleRequest is the manual upsert payload from the vehicles tab.
type SaveVehicleRequest struct {
	Plate1 string `json:"plate1"`
	Plate2 string `json:"plate2"`
	Driver string `json:"driver"`
	Phone  string `json:"phone"`
}
