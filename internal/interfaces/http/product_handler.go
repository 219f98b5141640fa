package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/application/usecase"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
)

// ProductHandler maneja las consultas de la tabla de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos con estado derivado
// @Tags         products
// @Produce      json
// @Param        search     query  string  false  "Texto sobre nombre, SKU o ID (sin distinguir mayúsculas)"
// @Param        status     query  string  false  "healthy | low | critical | all"
// @Param        warehouse  query  string  false  "Código de bodega | all"
// @Param        limit      query  int     false  "Tamaño de página (default 10, max 100, 0 = todos)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q, err := parseProductQuery(c, dto.DefaultPageSize)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto (ej. P-1001)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parseProductQuery lee filtros y paginación. Sin "limit" se usa defaultLimit.
func parseProductQuery(c *fiber.Ctx, defaultLimit int) (dto.ProductQuery, error) {
	q := dto.ProductQuery{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		Warehouse: c.Query("warehouse"),
	}
	q.Limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, domain.ErrInvalidInput
		}
		q.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, domain.ErrInvalidInput
		}
		q.Offset = n
	}
	return q, nil
}
