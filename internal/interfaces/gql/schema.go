// Package gql expone el esquema GraphQL del tablero (products, warehouses, kpis y las dos mutaciones)
// sobre los mismos casos de uso que la API REST.
package gql

import (
	"github.com/graphql-go/graphql"

	appanalytics "github.com/jhoicas/Inventario-visibility/internal/application/analytics"
	"github.com/jhoicas/Inventario-visibility/internal/application/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/application/usecase"
)

// Deps casos de uso que resuelven el esquema.
type Deps struct {
	Products   *usecase.ProductUseCase
	Warehouses *usecase.WarehouseUseCase
	Inventory  *inventory.InventoryUseCase
	Dashboard  *appanalytics.DashboardUseCase

	// RequireAuth exige un actor con uno de MutationRoles en las mutaciones.
	RequireAuth   bool
	MutationRoles []string
}

var warehouseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Warehouse",
	Fields: graphql.Fields{
		"code":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"city":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"country": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"sku":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"warehouse": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"demand":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"status": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "healthy | low | critical, calculado en cada lectura",
		},
	},
})

var kpiType = graphql.NewObject(graphql.ObjectConfig{
	Name: "KPI",
	Fields: graphql.Fields{
		"date":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"demand": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var summaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Summary",
	Fields: graphql.Fields{
		"totalStock":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalDemand":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"fulfillable":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"fillRate":      &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"healthy":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"low":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"critical":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"productsCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

// NewSchema construye el esquema GraphQL.
func NewSchema(deps Deps) (graphql.Schema, error) {
	r := &resolver{deps: deps}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: nonNullList(productType),
				Args: graphql.FieldConfigArgument{
					"search":    &graphql.ArgumentConfig{Type: graphql.String},
					"status":    &graphql.ArgumentConfig{Type: graphql.String},
					"warehouse": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.products,
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.product,
			},
			"warehouses": &graphql.Field{
				Type:    nonNullList(warehouseType),
				Resolve: r.warehouses,
			},
			"kpis": &graphql.Field{
				Type: nonNullList(kpiType),
				Args: graphql.FieldConfigArgument{
					"range": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.kpis,
			},
			"summary": &graphql.Field{
				Type:    graphql.NewNonNull(summaryType),
				Resolve: r.summary,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"updateDemand": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"demand": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.updateDemand,
			},
			"transferStock": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"to":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"qty":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.transferStock,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func nonNullList(t graphql.Type) graphql.Output {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
}
