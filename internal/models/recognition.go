package models

// RecognitionItem is one product row guessed from a slip photo. All
// fields are raw strings, possibly empty; nothing is trusted until it
// passes through the same reconciliation path as manual typing.
type RecognitionItem struct {
	Product     string `json:"product"`
	SpecJin     string `json:"spec_jin"`
	Count       string `json:"count"`
	PricePerTon string `json:"price_per_ton"`
}

// RecognitionResult is the structured best-effort guess returned by the
// vision model.
type RecognitionResult struct {
	Customer    string            `json:"customer"`
	Destination string            `json:"destination"`
	Plate       string            `json:"plate"`
	Driver      string            `json:"driver"`
	Date        string            `json:"date"`
	Items       []RecognitionItem `json:"items"`
}

// AutofillRequest carries the current form header and rows to the
// reference auto-fill endpoint.
type AutofillRequest struct {
	Customer string     `json:"customer"`
	Location string     `json:"location"`
	Plate1   string     `json:"plate1"`
	Plate2   string     `json:"plate2"`
	Driver   string     `json:"driver"`
	Phone    string     `json:"phone"`
	Items    []SlipItem `json:"items"`
}

// AutofillResponse returns the completed header and reconciled rows.
type AutofillResponse struct {
	Customer   string     `json:"customer"`
	Location   string     `json:"location"`
	Plate1     string     `json:"plate1"`
	Plate2     string     `json:"plate2"`
	Driver     string     `json:"driver"`
	Phone      string     `json:"phone"`
	Items      []SlipItem `json:"items"`
	TotalsLine string     `json:"totals_line"`
	Summary    string     `json:"summary"`
}
