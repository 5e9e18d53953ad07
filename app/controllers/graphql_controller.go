package controllers

import (
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/app/services"
	gqlschema "github.com/shopkit/admin/pkg/graphql"
	"github.com/shopkit/admin/pkg/response"
)

// GraphQLController exposes a read-only query endpoint over the same
// data the REST routes serve, for ad-hoc reporting. Writes stay REST.
type GraphQLController struct {
	schema gql.Schema
}

func NewGraphQLController(stats *services.StatsService, catalog *services.CatalogService, orders *services.OrderService) (*GraphQLController, error) {
	productType := gql.NewObject(gql.ObjectConfig{
		Name: "Product",
		Fields: gql.Fields{
			"id":           &gql.Field{Type: gql.String},
			"name":         &gql.Field{Type: gql.String},
			"categoryId":   &gql.Field{Type: gql.String},
			"categoryName": &gql.Field{Type: gql.String},
			"price":        &gql.Field{Type: gql.Float},
			"stock":        &gql.Field{Type: gql.Int},
			"status":       &gql.Field{Type: gql.String},
		},
	})

	orderType := gql.NewObject(gql.ObjectConfig{
		Name: "Order",
		Fields: gql.Fields{
			"id":            &gql.Field{Type: gql.String},
			"customerName":  &gql.Field{Type: gql.String},
			"customerEmail": &gql.Field{Type: gql.String},
			"total":         &gql.Field{Type: gql.Float},
			"status":        &gql.Field{Type: gql.String},
		},
	})

	statsType := gql.NewObject(gql.ObjectConfig{
		Name: "DashboardStats",
		Fields: gql.Fields{
			"totalOrders":   &gql.Field{Type: gql.Int},
			"totalRevenue":  &gql.Field{Type: gql.Float},
			"totalProducts": &gql.Field{Type: gql.Int},
			"totalUsers":    &gql.Field{Type: gql.Int},
		},
	})

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"stats": &gql.Field{
				Type: statsType,
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					s, _, err := stats.Dashboard(p.Context)
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{
						"totalOrders":   s.TotalOrders,
						"totalRevenue":  s.TotalRevenue,
						"totalProducts": s.TotalProducts,
						"totalUsers":    s.TotalUsers,
					}, nil
				},
			},
			"products": &gql.Field{
				Type: gql.NewList(productType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					products := catalog.Products()
					out := make([]map[string]interface{}, 0, len(products))
					for _, pr := range products {
						out = append(out, map[string]interface{}{
							"id":           pr.ID,
							"name":         pr.Name,
							"categoryId":   pr.CategoryID,
							"categoryName": catalog.ResolveCategoryName(pr.CategoryID),
							"price":        pr.Price,
							"stock":        pr.Stock,
							"status":       string(pr.Status),
						})
					}
					return out, nil
				},
			},
			"orders": &gql.Field{
				Type: gql.NewList(orderType),
				Args: gql.FieldConfigArgument{
					"status": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					var (
						list []models.Order
						err  error
					)
					if raw, ok := p.Args["status"].(string); ok && raw != "" {
						list, err = orders.ListByStatus(p.Context, models.OrderStatus(raw))
					} else {
						list, err = orders.List(p.Context)
					}
					if err != nil {
						return nil, err
					}
					out := make([]map[string]interface{}, 0, len(list))
					for _, o := range list {
						out = append(out, map[string]interface{}{
							"id":            o.ID,
							"customerName":  o.CustomerName,
							"customerEmail": o.CustomerEmail,
							"total":         o.Total,
							"status":        string(o.Status),
						})
					}
					return out, nil
				},
			},
		},
	})

	schema, err := gqlschema.NewSchema(query)
	if err != nil {
		return nil, err
	}
	return &GraphQLController{schema: schema}, nil
}

func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	if err := decode(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	result := gql.Do(gql.Params{
		Schema:         c.schema,
		RequestString:  body.Query,
		VariableValues: body.Variables,
		Context:        r.Context(),
	})
	if len(result.Errors) > 0 {
		response.Error(w, http.StatusBadRequest, result.Errors[0].Message)
		return
	}
	response.Success(w, result.Data)
}
