// Package graphql wraps graphql-go schema construction for the
// read-only reporting endpoint.
package graphql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds a query-only schema. The admin API never mutates
// through GraphQL; all writes go through the REST routes.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}
