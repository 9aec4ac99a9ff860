package domain

// OrderStatus is the backend order status code.
type OrderStatus int

const (
	OrderProvisional OrderStatus = iota
	OrderConfirmed
	OrderBackordered
	OrderCustomizing
	OrderShipping
	OrderDelivered
	OrderCancelled
)

var orderStatusLabels = map[OrderStatus]string{
	OrderProvisional: "provisional",
	OrderConfirmed:   "confirmed",
	OrderBackordered: "backordered",
	OrderCustomizing: "customizing",
	OrderShipping:    "shipping",
	OrderDelivered:   "delivered",
	OrderCancelled:   "cancelled",
}

func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return "unknown"
}

// CanConfirm reports whether the confirm action applies: only provisional
// orders can be confirmed.
func (s OrderStatus) CanConfirm() bool { return s == OrderProvisional }

// CanCancel reports whether the cancel action applies: delivered and already
// cancelled orders cannot be cancelled.
func (s OrderStatus) CanCancel() bool { return s != OrderDelivered && s != OrderCancelled }

// StockStatus is the backend stock status code.
type StockStatus int

const (
	StockInStock StockStatus = iota
	StockOutOfStock
	StockOnOrder
)

var stockStatusLabels = map[StockStatus]string{
	StockInStock:    "in stock",
	StockOutOfStock: "out of stock",
	StockOnOrder:    "on order",
}

func (s StockStatus) Label() string {
	if l, ok := stockStatusLabels[s]; ok {
		return l
	}
	return "unknown"
}
