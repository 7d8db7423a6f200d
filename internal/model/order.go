package model

import "time"

// Order represents one participant's line against a session. CustomerName is
// a display string, not an identity: two orders with the same name belong to
// the same participant. TotalPrice is supplied by the caller and stored as-is.
type Order struct {
	ID           int       `json:"id" db:"id"`
	SessionID    int       `json:"sessionId" db:"session_id"`
	CustomerName string    `json:"customerName" db:"customer_name"`
	MenuItemID   int       `json:"menuItemId" db:"menu_item_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	UnitPrice    string    `json:"unitPrice" db:"unit_price"`
	TotalPrice   string    `json:"totalPrice" db:"total_price"`
	IsPaid       bool      `json:"isPaid" db:"is_paid"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// InsertOrder is the payload for placing an order.
type InsertOrder struct {
	SessionID    int    `json:"sessionId"`
	CustomerName string `json:"customerName"`
	MenuItemID   int    `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unitPrice"`
	TotalPrice   string `json:"totalPrice"`
	IsPaid       bool   `json:"isPaid"`
}

// Validate checks the payload shape and returns every violated field at once.
// TotalPrice is checked for format only, never recomputed from unit price and
// quantity.
func (o *InsertOrder) Validate() error {
	var fields []FieldError
	if o.SessionID <= 0 {
		fields = append(fields, FieldError{Field: "sessionId", Message: "sessionId is required"})
	}
	if o.CustomerName == "" {
		fields = append(fields, FieldError{Field: "customerName", Message: "customerName is required"})
	}
	if o.MenuItemID <= 0 {
		fields = append(fields, FieldError{Field: "menuItemId", Message: "menuItemId is required"})
	}
	if o.Quantity <= 0 {
		fields = append(fields, FieldError{Field: "quantity", Message: "quantity must be a positive integer"})
	}
	if o.UnitPrice == "" {
		fields = append(fields, FieldError{Field: "unitPrice", Message: "unitPrice is required"})
	} else if !decimalPattern.MatchString(o.UnitPrice) {
		fields = append(fields, FieldError{Field: "unitPrice", Message: "unitPrice must be a decimal string with two decimal places"})
	}
	if o.TotalPrice == "" {
		fields = append(fields, FieldError{Field: "totalPrice", Message: "totalPrice is required"})
	} else if !decimalPattern.MatchString(o.TotalPrice) {
		fields = append(fields, FieldError{Field: "totalPrice", Message: "totalPrice must be a decimal string with two decimal places"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// UpdatePayment is the payload for PATCH /api/orders/{id}/payment.
type UpdatePayment struct {
	IsPaid *bool `json:"isPaid"`
}

// Validate requires the isPaid flag to be present.
func (p *UpdatePayment) Validate() error {
	if p.IsPaid == nil {
		return &ValidationError{Fields: []FieldError{
			{Field: "isPaid", Message: "isPaid is required"},
		}}
	}
	return nil
}

// DateRangeReport carries every order created inside an inclusive time range
// together with totals derived from the returned set.
type DateRangeReport struct {
	Orders      []Order `json:"orders"`
	TotalOrders int     `json:"totalOrders"`
	PaidOrders  int     `json:"paidOrders"`
	TotalAmount string  `json:"totalAmount"`
}
