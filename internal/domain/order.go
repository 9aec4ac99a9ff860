package domain

// Order is the client-side copy of a backend order row. The backend owns the
// record; the console only reads it and drives status transitions through the
// confirm/cancel endpoints.
type Order struct {
	OrderID    string      `json:"orderId"`
	CustomerID string      `json:"customerId"`
	OrderDate  string      `json:"orderDate"`
	Status     OrderStatus `json:"status"`
}

// OrderItem is a line of an order detail payload.
type OrderItem struct {
	OrderItemID string `json:"orderItemId"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unitPrice"`
}

// OrderCriteria is the orders screen search draft. Empty string means the
// filter is unset and must not reach the wire.
type OrderCriteria struct {
	CustomerID    string `json:"customerId"`
	OrderDateFrom string `json:"orderDateFrom"`
	OrderDateTo   string `json:"orderDateTo"`
	Status        string `json:"status"`
}
