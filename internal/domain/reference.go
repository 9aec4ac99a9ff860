package domain

// Customer is a read-only reference entity used to fill the orders screen
// filter dropdown. Never mutated by the console.
type Customer struct {
	CustomerID     string `json:"customerId"`
	CustomerNumber string `json:"customerNumber"`
	CustomerName   string `json:"customerName"`
	Address        string `json:"address,omitempty"`
	MobileNumber   string `json:"mobileNumber,omitempty"`
	Email          string `json:"email,omitempty"`
}

// Display renders the dropdown/table label for a customer.
func (c Customer) Display() string {
	return c.CustomerNumber + " " + c.CustomerName
}

// Product is the read-only reference entity behind the stocks screen.
type Product struct {
	ProductID     string `json:"productId"`
	ProductNumber string `json:"productNumber"`
	ProductName   string `json:"productName"`
	Description   string `json:"description,omitempty"`
	Price         int    `json:"price"`
	Category      int    `json:"category,omitempty"`
}

func (p Product) Display() string {
	return p.ProductNumber + " " + p.ProductName
}
