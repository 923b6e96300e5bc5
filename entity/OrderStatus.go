package entity

// Order lifecycle: pending -> paid -> issued. Status never moves backwards.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
	OrderIssued  OrderStatus = "issued"
)
