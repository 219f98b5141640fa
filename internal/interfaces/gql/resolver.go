package gql

import (
	"slices"

	"github.com/graphql-go/graphql"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/application/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	inv "github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
)

type resolver struct {
	deps Deps
}

func (r *resolver) products(p graphql.ResolveParams) (interface{}, error) {
	q := dto.ProductQuery{
		Search:    argString(p, "search"),
		Status:    argString(p, "status"),
		Warehouse: argString(p, "warehouse"),
	}
	// Sin paginación: la consulta devuelve todos los productos filtrados.
	out, err := r.deps.Products.List(p.Context, q)
	if err != nil {
		return nil, wrap(err)
	}
	items := make([]map[string]interface{}, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, productMap(it))
	}
	return items, nil
}

func (r *resolver) product(p graphql.ResolveParams) (interface{}, error) {
	out, err := r.deps.Products.GetByID(p.Context, argString(p, "id"))
	if err != nil {
		return nil, wrap(err)
	}
	return productMap(*out), nil
}

func (r *resolver) warehouses(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.deps.Warehouses.List(p.Context)
	if err != nil {
		return nil, wrap(err)
	}
	items := make([]map[string]interface{}, 0, len(list))
	for _, w := range list {
		items = append(items, map[string]interface{}{
			"code": w.Code, "name": w.Name, "city": w.City, "country": w.Country,
		})
	}
	return items, nil
}

func (r *resolver) kpis(p graphql.ResolveParams) (interface{}, error) {
	trend, err := r.deps.Dashboard.GetTrend(p.Context, argString(p, "range"))
	if err != nil {
		return nil, wrap(err)
	}
	items := make([]map[string]interface{}, 0, len(trend.Points))
	for _, pt := range trend.Points {
		items = append(items, map[string]interface{}{"date": pt.Date, "stock": pt.Stock, "demand": pt.Demand})
	}
	return items, nil
}

func (r *resolver) summary(p graphql.ResolveParams) (interface{}, error) {
	s, err := r.deps.Dashboard.GetSummary(p.Context)
	if err != nil {
		return nil, wrap(err)
	}
	fill, _ := s.FillRate.Float64()
	return map[string]interface{}{
		"totalStock":    s.TotalStock,
		"totalDemand":   s.TotalDemand,
		"fulfillable":   s.Fulfillable,
		"fillRate":      fill,
		"healthy":       s.StatusCounts[string(inv.StatusHealthy)],
		"low":           s.StatusCounts[string(inv.StatusLow)],
		"critical":      s.StatusCounts[string(inv.StatusCritical)],
		"productsCount": s.ProductsCount,
	}, nil
}

func (r *resolver) updateDemand(p graphql.ResolveParams) (interface{}, error) {
	actor, err := r.authorize(p)
	if err != nil {
		return nil, wrap(err)
	}
	demand, _ := p.Args["demand"].(int)
	out, err := r.deps.Inventory.UpdateDemand(p.Context, inventory.DemandInputDTO{
		ProductID: argString(p, "id"),
		Demand:    demand,
		UserID:    actor.UserID,
	})
	if err != nil {
		return nil, wrap(err)
	}
	return productMap(*out), nil
}

func (r *resolver) transferStock(p graphql.ResolveParams) (interface{}, error) {
	actor, err := r.authorize(p)
	if err != nil {
		return nil, wrap(err)
	}
	qty, _ := p.Args["qty"].(int)
	out, err := r.deps.Inventory.TransferStock(p.Context, inventory.TransferInputDTO{
		ProductID: argString(p, "id"),
		From:      argString(p, "from"),
		To:        argString(p, "to"),
		Qty:       qty,
		UserID:    actor.UserID,
	})
	if err != nil {
		return nil, wrap(err)
	}
	return productMap(*out), nil
}

func (r *resolver) authorize(p graphql.ResolveParams) (Actor, error) {
	actor := ActorFromContext(p.Context)
	if !r.deps.RequireAuth {
		return actor, nil
	}
	if actor.UserID == "" {
		return actor, domain.ErrUnauthorized
	}
	if !slices.Contains(r.deps.MutationRoles, actor.Role) {
		return actor, domain.ErrForbidden
	}
	return actor, nil
}

func productMap(p dto.ProductResponse) map[string]interface{} {
	return map[string]interface{}{
		"id":        p.ID,
		"name":      p.Name,
		"sku":       p.SKU,
		"warehouse": p.Warehouse,
		"stock":     p.Stock,
		"demand":    p.Demand,
		"status":    p.Status,
	}
}

func argString(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
