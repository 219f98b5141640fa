package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
)

// TransferFromRequest adapta el body HTTP/GraphQL al caso de uso TransferStock.
func (uc *InventoryUseCase) TransferFromRequest(ctx context.Context, productID, userID string, in dto.TransferStockRequest) (*dto.ProductResponse, error) {
	return uc.TransferStock(ctx, TransferInputDTO{
		ProductID: productID,
		From:      in.From,
		To:        in.To,
		Qty:       in.Qty,
		UserID:    userID,
	})
}

// UpdateDemandFromRequest adapta el body HTTP al caso de uso UpdateDemand.
// Demand ausente en el body se trata como entrada inválida.
func (uc *InventoryUseCase) UpdateDemandFromRequest(ctx context.Context, productID, userID string, in dto.UpdateDemandRequest) (*dto.ProductResponse, error) {
	if in.Demand == nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.UpdateDemand(ctx, DemandInputDTO{
		ProductID: productID,
		Demand:    *in.Demand,
		UserID:    userID,
	})
}
