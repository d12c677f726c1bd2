package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"
	"loja/internal/usecase"
)

type salesService struct {
	logger    *slog.Logger
	saleRepo  repository.SaleRepository
	gate      service.ActionGate
	qrcode    service.QRCodeService
	publisher service.EventPublisher
}

// NewSalesService creates a new sales service instance
func NewSalesService(
	logger *slog.Logger,
	saleRepo repository.SaleRepository,
	gate service.ActionGate,
	qrcode service.QRCodeService,
	publisher service.EventPublisher,
) usecase.SalesUsecase {
	return &salesService{
		logger:    logger,
		saleRepo:  saleRepo,
		gate:      gate,
		qrcode:    qrcode,
		publisher: publisher,
	}
}

// ListSales retrieves every order of the owner, newest first.
func (s *salesService) ListSales(ctx context.Context, ownerUID string) ([]*entity.Sale, error) {
	return s.saleRepo.ListSales(ctx, ownerUID)
}

// GetSale retrieves a single order.
func (s *salesService) GetSale(ctx context.Context, ownerUID, id string) (*entity.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, ownerUID, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, err
	}

	return sale, nil
}

// CreateSale registers a new order in the pending state.
func (s *salesService) CreateSale(ctx context.Context, ownerUID string, input *usecase.CreateSaleInput) (*entity.Sale, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantidade deve ser positiva")
	}
	if input.TotalValue <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("valor total deve ser positivo")
	}
	if input.Priority != "" && !validSalePriority(input.Priority) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prioridade desconhecida")
	}
	if input.PaymentMethod != "" && !validPaymentMethod(input.PaymentMethod) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("forma de pagamento desconhecida")
	}

	now := time.Now()
	sale := &entity.Sale{
		Customer:        input.Customer,
		ItemDescription: input.ItemDescription,
		Quantity:        input.Quantity,
		TotalValue:      input.TotalValue,
		Status:          entity.SaleStatusPending,
		DeliveryDate:    input.DeliveryDate,
		Timestamp:       now.UnixMilli(),
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.ShippingAddress,
		OriginStoreID:   input.OriginStoreID,
		Notes:           input.Notes,
		Priority:        input.Priority,
		PaymentMethod:   input.PaymentMethod,
		UpdatedAt:       now,
	}

	key, err := s.saleRepo.CreateSale(ctx, ownerUID, sale)
	if err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSales, key, constants.RecordActionCreated)

	return sale, nil
}

// UpdateSale edits an existing order without touching its status.
func (s *salesService) UpdateSale(ctx context.Context, ownerUID, id string, input *usecase.UpdateSaleInput) (*entity.Sale, error) {
	fields := map[string]any{}
	if input.Customer != nil {
		fields["cliente"] = *input.Customer
	}
	if input.ItemDescription != nil {
		fields["produtoVendido"] = *input.ItemDescription
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantidade deve ser positiva")
		}
		fields["quantidade"] = *input.Quantity
	}
	if input.TotalValue != nil {
		if *input.TotalValue <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("valor total deve ser positivo")
		}
		fields["valorTotal"] = *input.TotalValue
	}
	if input.DeliveryDate != nil {
		fields["dataEnvio"] = *input.DeliveryDate
	}
	if input.CustomerPhone != nil {
		fields["clienteTelefone"] = *input.CustomerPhone
	}
	if input.ShippingAddress != nil {
		fields["enderecoEntrega"] = *input.ShippingAddress
	}
	if input.OriginStoreID != nil {
		fields["lojaOrigemId"] = *input.OriginStoreID
	}
	if input.Notes != nil {
		fields["observacoes"] = *input.Notes
	}
	if input.Priority != nil {
		if !validSalePriority(*input.Priority) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("prioridade desconhecida")
		}
		fields["prioridade"] = *input.Priority
	}
	if input.PaymentMethod != nil {
		if !validPaymentMethod(*input.PaymentMethod) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("forma de pagamento desconhecida")
		}
		fields["formaPagamento"] = *input.PaymentMethod
	}
	if len(fields) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nenhum campo para atualizar")
	}
	fields["updatedAt"] = time.Now()

	if err := s.saleRepo.UpdateSale(ctx, ownerUID, id, fields); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSales, id, constants.RecordActionUpdated)

	return s.saleRepo.FindSaleByID(ctx, ownerUID, id)
}

// ChangeStatus moves an order through the state machine after checking the
// status change passphrase.
func (s *salesService) ChangeStatus(ctx context.Context, ownerUID, id string, newStatus entity.SaleStatus, passphrase string) (*entity.Sale, error) {
	if err := s.gate.AuthorizeStatusChange(passphrase); err != nil {
		return nil, err
	}

	if !entity.ValidSaleStatus(newStatus) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status desconhecido")
	}

	sale, err := s.GetSale(ctx, ownerUID, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(sale.Status, newStatus) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("%s -> %s", sale.Status, newStatus),
		)
	}

	now := time.Now()
	fields := map[string]any{
		"status":    newStatus,
		"updatedAt": now,
	}
	if err := s.saleRepo.UpdateSale(ctx, ownerUID, id, fields); err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSales, id, constants.RecordActionUpdated)

	sale.Status = newStatus
	sale.UpdatedAt = now

	return sale, nil
}

// DeleteSale removes an order after checking the delete passphrase.
func (s *salesService) DeleteSale(ctx context.Context, ownerUID, id, passphrase string) error {
	if err := s.gate.AuthorizeDelete(passphrase); err != nil {
		return err
	}

	if err := s.saleRepo.DeleteSale(ctx, ownerUID, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return domainerrors.ErrSaleNotFound
		}

		return err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSales, id, constants.RecordActionDeleted)

	return nil
}

// TrackingQR renders the PNG tracking QR code of an order.
func (s *salesService) TrackingQR(ctx context.Context, ownerUID, id string) ([]byte, error) {
	sale, err := s.GetSale(ctx, ownerUID, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateTrackingQR(sale.ID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to render tracking QR code")
	}

	return png, nil
}

func validSalePriority(p entity.SalePriority) bool {
	switch p {
	case entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh:
		return true
	}

	return false
}

func validPaymentMethod(m entity.PaymentMethod) bool {
	switch m {
	case entity.PaymentPix, entity.PaymentCard, entity.PaymentBoleto:
		return true
	}

	return false
}
