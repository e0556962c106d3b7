package models

// Plan describes a subscription tier. Display data only; billing for a
// subscription goes through the regular payment flow.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MonthlyPrice float64  `json:"monthlyPrice"` // 0 means "on quote"
	Currency     string   `json:"currency"`
	Popular      bool     `json:"popular"`
	Features     []string `json:"features"`
}
