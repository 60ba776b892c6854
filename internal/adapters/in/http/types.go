package http

// Request and response bodies of the fulfillment API. Amounts travel as
// integers in minor currency units.

// RegisterOrderRequest is the payload handed over by the ordering pipeline.
type RegisterOrderRequest struct {
	Number         string             `json:"number"`
	DeliveryMethod string             `json:"delivery_method"`
	PaymentMethod  string             `json:"payment_method"`
	TotalAmount    int64              `json:"total_amount"`
	Items          []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one line item of a registered order.
type OrderItemRequest struct {
	ProductCode string `json:"product_code"`
	Barcode     string `json:"barcode"`
	Quantity    int    `json:"quantity"`
}

// RegisterOrderResponse returns the identifier minted for the new order.
type RegisterOrderResponse struct {
	OrderID string `json:"order_id"`
}

// TransitionRequest names the target status of an explicit transition.
type TransitionRequest struct {
	Target string `json:"target"`
}

// ScanRequest carries one scanned barcode or product code.
type ScanRequest struct {
	Code string `json:"code"`
}

// ScanResponse reports the effect of an accepted scan.
type ScanResponse struct {
	LineCompleted bool `json:"line_completed"`
	AllVerified   bool `json:"all_verified"`
}

// AssignmentRequest binds an order to a carrier or messenger.
type AssignmentRequest struct {
	Kind       string `json:"kind"`
	AssigneeID string `json:"assignee_id"`
}

// CollectionRequest reports what a messenger collected at the door.
type CollectionRequest struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"`
}

// OrderProgressResponse is the packing progress view of an order.
type OrderProgressResponse struct {
	OrderID       string              `json:"order_id"`
	Number        string              `json:"number"`
	Status        string              `json:"status"`
	RequiredTotal int                 `json:"required_total"`
	VerifiedTotal int                 `json:"verified_total"`
	Lines         []OrderProgressLine `json:"lines"`
}

// OrderProgressLine is the per-item verification state.
type OrderProgressLine struct {
	ItemID           string `json:"item_id"`
	ProductCode      string `json:"product_code"`
	Barcode          string `json:"barcode"`
	RequiredQuantity int    `json:"required_quantity"`
	VerifiedCount    int    `json:"verified_count"`
	IsVerified       bool   `json:"is_verified"`
}

// MessengerCandidate is one assignable messenger, zone matches first.
type MessengerCandidate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Zone      string `json:"zone"`
	ZoneMatch bool   `json:"zone_match"`
}

// MessengerBalanceResponse is the derived cash-in-hand of a messenger.
type MessengerBalanceResponse struct {
	MessengerID    string `json:"messenger_id"`
	ReceivedTotal  int64  `json:"received_total"`
	DeliveredTotal int64  `json:"delivered_total"`
	Balance        int64  `json:"balance"`
}

// PendingCollection is one wallet work-queue entry.
type PendingCollection struct {
	OrderID        string `json:"order_id"`
	OrderNumber    string `json:"order_number"`
	Status         string `json:"status"`
	Method         string `json:"method"`
	ExpectedAmount int64  `json:"expected_amount"`
	AmountReceived int64  `json:"amount_received"`
	HasDiscrepancy bool   `json:"has_discrepancy"`
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
