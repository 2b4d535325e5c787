package domain

type Shift struct {
	ID             string
	Serial         int64
	Status         string
	CashRegisterID string
	OpenedAt       string
	ClosedAt       string
}

// ReceiptGood - one fiscal goods line, all amounts in kopiykas.
// Cost must equal Price * Quantity; the provider does not validate this.
type ReceiptGood struct {
	Code     string
	Name     string
	Price    int64
	Quantity int64
	Cost     int64
	Tax      []int
}

type ReceiptPayment struct {
	Type  string
	Value int64
}

type ReceiptDelivery struct {
	Email string
	Phone string
}

type SaleReceiptRequest struct {
	Goods    []ReceiptGood
	Payments []ReceiptPayment
	Delivery *ReceiptDelivery
	OrderID  string
}

type ProviderReceipt struct {
	ID         string
	Serial     int64
	Status     string
	FiscalCode string
	FiscalDate string
	TotalSum   int64
	ReceiptURL string
	Raw        string
}

type FiscalProvider interface {
	// CurrentShift returns nil, nil when no shift is open.
	CurrentShift() (*Shift, error)
	OpenShift() (*Shift, error)
	CloseShift() (*Shift, error)
	// CreateSaleReceipt transparently opens a shift when none is open.
	CreateSaleReceipt(req *SaleReceiptRequest) (*ProviderReceipt, error)
	CreateReturnReceipt(req *SaleReceiptRequest) (*ProviderReceipt, error)
}
