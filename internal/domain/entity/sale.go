package entity

import "time"

// SaleStatus is the order lifecycle state.
type SaleStatus string

const (
	SaleStatusPending    SaleStatus = "pendente"
	SaleStatusProcessing SaleStatus = "processando"
	SaleStatusShipped    SaleStatus = "enviado"
	SaleStatusDelivered  SaleStatus = "entregue"
	SaleStatusCancelled  SaleStatus = "cancelado"
)

// SalePriority is the optional handling priority of an order.
type SalePriority string

const (
	PriorityLow    SalePriority = "baixa"
	PriorityMedium SalePriority = "media"
	PriorityHigh   SalePriority = "alta"
)

// PaymentMethod is the optional payment method of an order.
type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "pix"
	PaymentCard   PaymentMethod = "cartao"
	PaymentBoleto PaymentMethod = "boleto"
)

// Sale is a customer order. The sold item is a free-text snapshot of the SKU
// description, not a foreign key; historical orders keep the wording they were
// created with even if the catalog changes.
type Sale struct {
	ID              string        `json:"id"`
	Customer        string        `json:"cliente"`
	ItemDescription string        `json:"produtoVendido"` // "Model, size and color" snapshot.
	Quantity        int           `json:"quantidade"`
	TotalValue      float64       `json:"valorTotal"`
	Status          SaleStatus    `json:"status"`
	DeliveryDate    string        `json:"dataEnvio"` // Date-only.
	Timestamp       int64         `json:"timestamp"` // Creation time in Unix milliseconds; sort key.
	CustomerPhone   string        `json:"clienteTelefone,omitempty"`
	ShippingAddress string        `json:"enderecoEntrega,omitempty"`
	OriginStoreID   string        `json:"lojaOrigemId,omitempty"`
	Notes           string        `json:"observacoes,omitempty"`
	Priority        SalePriority  `json:"prioridade,omitempty"`
	PaymentMethod   PaymentMethod `json:"formaPagamento,omitempty"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// validNext encodes the order state machine: pending → processing → shipped →
// delivered, cancellation possible until delivery, and a cancelled order may
// only be reopened back to pending.
var validNext = map[SaleStatus]map[SaleStatus]bool{
	SaleStatusPending:    {SaleStatusProcessing: true, SaleStatusCancelled: true},
	SaleStatusProcessing: {SaleStatusShipped: true, SaleStatusCancelled: true},
	SaleStatusShipped:    {SaleStatusDelivered: true, SaleStatusCancelled: true},
	SaleStatusDelivered:  {},
	SaleStatusCancelled:  {SaleStatusPending: true},
}

// CanTransition reports whether a sale may move from one status to another.
func CanTransition(from, to SaleStatus) bool {
	return validNext[from][to]
}

// NextStatuses returns the statuses reachable from the given one, in display
// order. Delivered is terminal and returns an empty slice.
func NextStatuses(from SaleStatus) []SaleStatus {
	switch from {
	case SaleStatusPending:
		return []SaleStatus{SaleStatusProcessing, SaleStatusCancelled}
	case SaleStatusProcessing:
		return []SaleStatus{SaleStatusShipped, SaleStatusCancelled}
	case SaleStatusShipped:
		return []SaleStatus{SaleStatusDelivered, SaleStatusCancelled}
	case SaleStatusCancelled:
		return []SaleStatus{SaleStatusPending}
	default:
		return []SaleStatus{}
	}
}

// ValidSaleStatus reports whether s is a known order status.
func ValidSaleStatus(s SaleStatus) bool {
	_, ok := validNext[s]

	return ok
}

// UnitPrice returns the per-unit price implied by the total, or 0 for an
// empty order.
func (s *Sale) UnitPrice() float64 {
	if s.Quantity <= 0 {
		return 0
	}

	return s.TotalValue / float64(s.Quantity)
}
