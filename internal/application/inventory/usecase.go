package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/application/usecase"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

// Límite por defecto del historial de movimientos.
const defaultMovementsLimit = 50

// InventoryUseCase aplica las mutaciones del tablero (demanda y traslados) de forma transaccional
// y deja un movimiento de auditoría por cada cambio exitoso.
type InventoryUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	movRepo       repository.InventoryMovementRepository
	log           *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	movRepo repository.InventoryMovementRepository,
	log *logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		movRepo:       movRepo,
		log:           log,
		now:           time.Now,
		newID:         func() string { return uuid.New().String() },
	}
}

// TransferInputDTO entrada para trasladar stock.
// From debe coincidir con la bodega actual del producto.
type TransferInputDTO struct {
	ProductID string
	From      string
	To        string
	Qty       int
	UserID    string
}

// DemandInputDTO entrada para actualizar la demanda.
type DemandInputDTO struct {
	ProductID string
	Demand    int
	UserID    string
}

// TransferStock descuenta Qty del stock y reubica el producto completo en la bodega destino.
// La demanda no cambia. Errores: ErrInvalidInput, ErrNotFound (producto o bodega destino),
// ErrLocationMismatch, ErrInsufficientStock. Ante error no se aplica ningún cambio.
func (uc *InventoryUseCase) TransferStock(ctx context.Context, in TransferInputDTO) (*dto.ProductResponse, error) {
	if in.ProductID == "" || in.From == "" || in.To == "" || in.From == in.To || in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	dest, err := uc.warehouseRepo.GetByCode(ctx, in.To)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener bodega destino: %w", domain.ErrFetchFailure, err)
	}

	var updated *entity.Product
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		// Bloquea el producto hasta el commit
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Warehouse != in.From {
			return domain.ErrLocationMismatch
		}
		if in.Qty > product.Stock {
			return domain.ErrInsufficientStock
		}
		// La bodega destino se valida después del producto y el origen.
		if dest == nil {
			return domain.ErrNotFound
		}

		now := uc.now()
		mov := &entity.InventoryMovement{
			ID:             uc.newID(),
			ProductID:      product.ID,
			Type:           entity.MovementTypeTransfer,
			FromWarehouse:  in.From,
			ToWarehouse:    in.To,
			Quantity:       in.Qty,
			PreviousStock:  product.Stock,
			NewStock:       product.Stock - in.Qty,
			PreviousDemand: product.Demand,
			NewDemand:      product.Demand,
			CreatedAt:      now,
			CreatedBy:      in.UserID,
		}

		product.Stock -= in.Qty
		product.Warehouse = in.To
		product.UpdatedAt = now
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Str("product_id", in.ProductID).
			Str("from", in.From).
			Str("to", in.To).
			Int("qty", in.Qty).
			Msg("traslado rechazado")
		return nil, mapStoreError(err)
	}

	uc.log.Info().
		Str("product_id", updated.ID).
		Str("from", in.From).
		Str("to", in.To).
		Int("qty", in.Qty).
		Int("stock", updated.Stock).
		Msg("traslado registrado")
	out := usecase.ToProductResponse(updated)
	return &out, nil
}

// UpdateDemand sobrescribe la demanda del producto. Demanda negativa → ErrInvalidInput.
func (uc *InventoryUseCase) UpdateDemand(ctx context.Context, in DemandInputDTO) (*dto.ProductResponse, error) {
	if in.ProductID == "" || in.Demand < 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		now := uc.now()
		mov := &entity.InventoryMovement{
			ID:             uc.newID(),
			ProductID:      product.ID,
			Type:           entity.MovementTypeDemandUpdate,
			PreviousStock:  product.Stock,
			NewStock:       product.Stock,
			PreviousDemand: product.Demand,
			NewDemand:      in.Demand,
			CreatedAt:      now,
			CreatedBy:      in.UserID,
		}

		product.Demand = in.Demand
		product.UpdatedAt = now
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("product_id", in.ProductID).Int("demand", in.Demand).Msg("actualización de demanda rechazada")
		return nil, mapStoreError(err)
	}

	uc.log.Info().Str("product_id", updated.ID).Int("demand", updated.Demand).Msg("demanda actualizada")
	out := usecase.ToProductResponse(updated)
	return &out, nil
}

// ListMovements devuelve el historial del producto, más reciente primero.
func (uc *InventoryUseCase) ListMovements(ctx context.Context, productID string, limit int) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultMovementsLimit
	}
	limit = min(limit, dto.MaxPageSize)
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener producto: %w", domain.ErrFetchFailure, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: listar movimientos: %w", domain.ErrFetchFailure, err)
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{ProductID: productID, Items: items}, nil
}

// mapStoreError deja pasar los errores de dominio y marca el resto como fallo del almacén.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrLocationMismatch),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidInput):
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrFetchFailure, err)
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		Type:           m.Type,
		FromWarehouse:  m.FromWarehouse,
		ToWarehouse:    m.ToWarehouse,
		Quantity:       m.Quantity,
		PreviousStock:  m.PreviousStock,
		NewStock:       m.NewStock,
		PreviousDemand: m.PreviousDemand,
		NewDemand:      m.NewDemand,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}
