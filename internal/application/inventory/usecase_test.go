package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/application/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

type mockWarehouseRepo struct{ mock.Mock }

func (m *mockWarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]*entity.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWarehouseRepo) GetByCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	args := m.Called(ctx, code)
	if w := args.Get(0); w != nil {
		return w.(*entity.Warehouse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMovementRepo struct{ mock.Mock }

func (m *mockMovementRepo) Create(ctx context.Context, mov *entity.InventoryMovement) error {
	return m.Called(ctx, mov).Error(0)
}

func (m *mockMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.InventoryMovement, error) {
	args := m.Called(ctx, productID, limit)
	if l := args.Get(0); l != nil {
		return l.([]*entity.InventoryMovement), args.Error(1)
	}
	return nil, args.Error(1)
}

// passthroughTx ejecuta fn con los mismos mocks; cuenta las invocaciones.
type passthroughTx struct {
	products  *mockProductRepo
	movements *mockMovementRepo
	runs      int
}

func (tx *passthroughTx) Run(_ context.Context, fn func(repository.ProductRepository, repository.InventoryMovementRepository) error) error {
	tx.runs++
	return fn(tx.products, tx.movements)
}

type fixture struct {
	products   *mockProductRepo
	warehouses *mockWarehouseRepo
	movements  *mockMovementRepo
	tx         *passthroughTx
	uc         *inventory.InventoryUseCase
}

func newFixture() *fixture {
	f := &fixture{
		products:   &mockProductRepo{},
		warehouses: &mockWarehouseRepo{},
		movements:  &mockMovementRepo{},
	}
	f.tx = &passthroughTx{products: f.products, movements: f.movements}
	f.uc = inventory.NewInventoryUseCase(f.tx, f.products, f.warehouses, f.movements, logger.Nop())
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.products.AssertExpectations(t)
	f.warehouses.AssertExpectations(t)
	f.movements.AssertExpectations(t)
}

func washer() *entity.Product {
	return &entity.Product{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80}
}

var pune = &entity.Warehouse{Code: "PNQ-C", Name: "Pune Charlie", City: "Pune", Country: "India"}

// ──────────────────────────────────────────────────────────────────────────────
// TransferStock
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferStock_Exito(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.warehouses.On("GetByCode", ctx, "PNQ-C").Return(pune, nil)
	f.products.On("GetForUpdate", ctx, "P-1002").Return(washer(), nil)
	f.products.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == "P-1002" && p.Stock == 20 && p.Warehouse == "PNQ-C" && p.Demand == 80
	})).Return(nil)
	f.movements.On("Create", ctx, mock.MatchedBy(func(m *entity.InventoryMovement) bool {
		return m.ID != "" &&
			m.Type == entity.MovementTypeTransfer &&
			m.FromWarehouse == "BLR-A" && m.ToWarehouse == "PNQ-C" &&
			m.Quantity == 30 && m.PreviousStock == 50 && m.NewStock == 20 &&
			m.CreatedBy == "op-1" && !m.CreatedAt.IsZero()
	})).Return(nil)

	out, err := f.uc.TransferStock(ctx, inventory.TransferInputDTO{
		ProductID: "P-1002", From: "BLR-A", To: "PNQ-C", Qty: 30, UserID: "op-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Stock)
	assert.Equal(t, "PNQ-C", out.Warehouse)
	assert.Equal(t, 80, out.Demand)
	assert.Equal(t, "critical", out.Status)
	assert.Equal(t, 1, f.tx.runs)
	f.assertExpectations(t)
}

func TestTransferStock_TodoElStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.warehouses.On("GetByCode", ctx, "PNQ-C").Return(pune, nil)
	f.products.On("GetForUpdate", ctx, "P-1002").Return(washer(), nil)
	f.products.On("Update", ctx, mock.Anything).Return(nil)
	f.movements.On("Create", ctx, mock.Anything).Return(nil)

	out, err := f.uc.TransferStock(ctx, inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "PNQ-C", Qty: 50})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
}

func TestTransferStock_EntradaInvalida(t *testing.T) {
	tests := []struct {
		name string
		in   inventory.TransferInputDTO
	}{
		{"cantidad cero", inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "PNQ-C", Qty: 0}},
		{"cantidad negativa", inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "PNQ-C", Qty: -5}},
		{"sin origen", inventory.TransferInputDTO{ProductID: "P-1002", To: "PNQ-C", Qty: 1}},
		{"sin destino", inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", Qty: 1}},
		{"misma bodega", inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "BLR-A", Qty: 1}},
		{"sin producto", inventory.TransferInputDTO{From: "BLR-A", To: "PNQ-C", Qty: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.TransferStock(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, f.tx.runs)
			f.assertExpectations(t)
		})
	}
}

func TestTransferStock_Rechazos(t *testing.T) {
	tests := []struct {
		name    string
		in      inventory.TransferInputDTO
		product *entity.Product
		wantErr error
	}{
		{"producto inexistente", inventory.TransferInputDTO{ProductID: "P-0000", From: "BLR-A", To: "PNQ-C", Qty: 1}, nil, domain.ErrNotFound},
		{"origen distinto", inventory.TransferInputDTO{ProductID: "P-1002", From: "DEL-B", To: "PNQ-C", Qty: 1}, washer(), domain.ErrLocationMismatch},
		{"stock insuficiente", inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "PNQ-C", Qty: 9999}, washer(), domain.ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()
			f.warehouses.On("GetByCode", ctx, "PNQ-C").Return(pune, nil)
			f.products.On("GetForUpdate", ctx, tt.in.ProductID).Return(tt.product, nil)

			_, err := f.uc.TransferStock(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.assertExpectations(t)
		})
	}
}

func TestTransferStock_BodegaDestinoInexistente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.warehouses.On("GetByCode", ctx, "XXX").Return(nil, nil)
	f.products.On("GetForUpdate", ctx, "P-1002").Return(washer(), nil)

	_, err := f.uc.TransferStock(ctx, inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "XXX", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

// El origen y el stock se validan antes que la bodega destino.
func TestTransferStock_OrdenDeValidaciones(t *testing.T) {
	tests := []struct {
		name    string
		in      inventory.TransferInputDTO
		wantErr error
	}{
		{"origen distinto y destino inexistente", inventory.TransferInputDTO{ProductID: "P-1002", From: "DEL-B", To: "XXX", Qty: 1}, domain.ErrLocationMismatch},
		{"stock insuficiente y destino inexistente", inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "XXX", Qty: 9999}, domain.ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()
			f.warehouses.On("GetByCode", ctx, "XXX").Return(nil, nil)
			f.products.On("GetForUpdate", ctx, "P-1002").Return(washer(), nil)

			_, err := f.uc.TransferStock(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, domain.ErrNotFound)
			f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestTransferStock_FalloDelAlmacen(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	boom := errors.New("conexión cerrada")
	f.warehouses.On("GetByCode", ctx, "PNQ-C").Return(pune, nil)
	f.products.On("GetForUpdate", ctx, "P-1002").Return(washer(), nil)
	f.products.On("Update", ctx, mock.Anything).Return(boom)

	_, err := f.uc.TransferStock(ctx, inventory.TransferInputDTO{ProductID: "P-1002", From: "BLR-A", To: "PNQ-C", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrFetchFailure)
	assert.ErrorIs(t, err, boom)
	f.movements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateDemand
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDemand_Exito(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.products.On("GetForUpdate", ctx, "P-1002").Return(washer(), nil)
	f.products.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Demand == 40 && p.Stock == 50 && p.Warehouse == "BLR-A"
	})).Return(nil)
	f.movements.On("Create", ctx, mock.MatchedBy(func(m *entity.InventoryMovement) bool {
		return m.Type == entity.MovementTypeDemandUpdate && m.PreviousDemand == 80 && m.NewDemand == 40 &&
			m.PreviousStock == 50 && m.NewStock == 50
	})).Return(nil)

	out, err := f.uc.UpdateDemand(ctx, inventory.DemandInputDTO{ProductID: "P-1002", Demand: 40})
	require.NoError(t, err)
	assert.Equal(t, 40, out.Demand)
	assert.Equal(t, "healthy", out.Status)
	f.assertExpectations(t)
}

func TestUpdateDemand_Cero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.products.On("GetForUpdate", ctx, "P-1002").Return(washer(), nil)
	f.products.On("Update", ctx, mock.Anything).Return(nil)
	f.movements.On("Create", ctx, mock.Anything).Return(nil)

	out, err := f.uc.UpdateDemand(ctx, inventory.DemandInputDTO{ProductID: "P-1002", Demand: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Demand)
	assert.Equal(t, "healthy", out.Status)
}

func TestUpdateDemand_Negativa(t *testing.T) {
	f := newFixture()
	_, err := f.uc.UpdateDemand(context.Background(), inventory.DemandInputDTO{ProductID: "P-1002", Demand: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.tx.runs)
}

func TestUpdateDemand_ProductoInexistente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.products.On("GetForUpdate", ctx, "P-0000").Return(nil, nil)

	_, err := f.uc.UpdateDemand(ctx, inventory.DemandInputDTO{ProductID: "P-0000", Demand: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDemandFromRequest_SinDemanda(t *testing.T) {
	f := newFixture()
	_, err := f.uc.UpdateDemandFromRequest(context.Background(), "P-1002", "", dto.UpdateDemandRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMovements
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_LimitePorDefecto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	at := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	f.products.On("GetByID", ctx, "P-1002").Return(washer(), nil)
	f.movements.On("ListByProduct", ctx, "P-1002", 50).Return([]*entity.InventoryMovement{
		{ID: "m-2", ProductID: "P-1002", Type: entity.MovementTypeTransfer, Quantity: 30, CreatedAt: at},
		{ID: "m-1", ProductID: "P-1002", Type: entity.MovementTypeDemandUpdate, NewDemand: 80, CreatedAt: at.Add(-time.Hour)},
	}, nil)

	out, err := f.uc.ListMovements(ctx, "P-1002", 0)
	require.NoError(t, err)
	assert.Equal(t, "P-1002", out.ProductID)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "m-2", out.Items[0].ID)
	assert.Equal(t, 30, out.Items[0].Quantity)
	f.assertExpectations(t)
}

func TestListMovements_LimiteSeAcotaAlMaximo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.products.On("GetByID", ctx, "P-1002").Return(washer(), nil)
	f.movements.On("ListByProduct", ctx, "P-1002", dto.MaxPageSize).Return([]*entity.InventoryMovement{}, nil)

	out, err := f.uc.ListMovements(ctx, "P-1002", 1000)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	f.assertExpectations(t)
}

func TestListMovements_ProductoInexistente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.products.On("GetByID", ctx, "P-0000").Return(nil, nil)

	_, err := f.uc.ListMovements(ctx, "P-0000", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.movements.AssertNotCalled(t, "ListByProduct", mock.Anything, mock.Anything, mock.Anything)
}
