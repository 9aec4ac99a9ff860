package domain

// Stock mirrors a backend stock row. StockID is assigned by the backend on
// registration; delete is a soft delete owned by the backend.
type Stock struct {
	StockID    string      `json:"stockId"`
	ProductID  string      `json:"productId"`
	Quantity   int         `json:"quantity"`
	Status     StockStatus `json:"status"`
	UpdateDate string      `json:"updateDate,omitempty"`
}

// StockCriteria is the stocks screen search draft. Quantity bounds stay
// strings so an empty field reads as "no filter" rather than zero.
type StockCriteria struct {
	ProductID   string `json:"productId"`
	QuantityMin string `json:"quantityMin"`
	QuantityMax string `json:"quantityMax"`
	Status      string `json:"status"`
}
