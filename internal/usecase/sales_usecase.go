package usecase

import (
	"context"

	"loja/internal/domain/entity"
)

// CreateSaleInput carries the fields accepted when registering a sales order.
// Orders always start pending.
type CreateSaleInput struct {
	Customer        string               `json:"cliente" validate:"required"`
	ItemDescription string               `json:"produtoVendido" validate:"required"`
	Quantity        int                  `json:"quantidade" validate:"required,gt=0"`
	TotalValue      float64              `json:"valorTotal" validate:"required,gt=0"`
	DeliveryDate    string               `json:"dataEnvio"`
	CustomerPhone   string               `json:"clienteTelefone"`
	ShippingAddress string               `json:"enderecoEntrega"`
	OriginStoreID   string               `json:"lojaOrigemId"`
	Notes           string               `json:"observacoes"`
	Priority        entity.SalePriority  `json:"prioridade"`
	PaymentMethod   entity.PaymentMethod `json:"formaPagamento"`
}

// UpdateSaleInput carries the optional fields of an order edit. Status is
// deliberately absent; it only moves through ChangeStatus.
type UpdateSaleInput struct {
	Customer        *string               `json:"cliente"`
	ItemDescription *string               `json:"produtoVendido"`
	Quantity        *int                  `json:"quantidade"`
	TotalValue      *float64              `json:"valorTotal"`
	DeliveryDate    *string               `json:"dataEnvio"`
	CustomerPhone   *string               `json:"clienteTelefone"`
	ShippingAddress *string               `json:"enderecoEntrega"`
	OriginStoreID   *string               `json:"lojaOrigemId"`
	Notes           *string               `json:"observacoes"`
	Priority        *entity.SalePriority  `json:"prioridade"`
	PaymentMethod   *entity.PaymentMethod `json:"formaPagamento"`
}

// SalesUsecase defines the interface for sales order use cases
type SalesUsecase interface {
	// ListSales retrieves every order of the owner, newest first.
	ListSales(ctx context.Context, ownerUID string) ([]*entity.Sale, error)

	// GetSale retrieves a single order.
	GetSale(ctx context.Context, ownerUID, id string) (*entity.Sale, error)

	// CreateSale registers a new order in the pending state.
	CreateSale(ctx context.Context, ownerUID string, input *CreateSaleInput) (*entity.Sale, error)

	// UpdateSale edits an existing order without touching its status.
	UpdateSale(ctx context.Context, ownerUID, id string, input *UpdateSaleInput) (*entity.Sale, error)

	// ChangeStatus moves an order through the state machine after checking the
	// status change passphrase.
	ChangeStatus(ctx context.Context, ownerUID, id string, newStatus entity.SaleStatus, passphrase string) (*entity.Sale, error)

	// DeleteSale removes an order after checking the delete passphrase.
	DeleteSale(ctx context.Context, ownerUID, id, passphrase string) error

	// TrackingQR renders the PNG tracking QR code of an order.
	TrackingQR(ctx context.Context, ownerUID, id string) ([]byte, error)
}
