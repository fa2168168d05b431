// Package operation implements the typed operations served by the single
// API endpoint.
package operation

import (
	"context"
	"slices"

	"houses/internal/usecase"
)

// Kind separates reads from writes.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Operation names accepted in the request envelope.
const (
	OpHouse                = "house"
	OpCreateHouse          = "createHouse"
	OpCreateImageSignature = "createImageSignature"
)

// FieldNearby selects the nearby houses of a house result.
const FieldNearby = "nearby"

// resolver produces the result of one operation.
type resolver func(d *Dispatcher, ctx context.Context, rc usecase.RequestContext, req *Request) (any, error)

// Definition is one row of the operation table.
type Definition struct {
	Name         string
	Kind         Kind
	RequiresAuth bool
	resolve      resolver
}

// schema is the complete operation table. Anything not listed is rejected.
var schema = []Definition{
	{Name: OpHouse, Kind: KindQuery, RequiresAuth: false, resolve: (*Dispatcher).resolveHouse},
	{Name: OpCreateHouse, Kind: KindMutation, RequiresAuth: true, resolve: (*Dispatcher).resolveCreateHouse},
	{Name: OpCreateImageSignature, Kind: KindMutation, RequiresAuth: true, resolve: (*Dispatcher).resolveCreateImageSignature},
}

// Lookup returns the definition for name.
func Lookup(name string) (Definition, bool) {
	idx := slices.IndexFunc(schema, func(def Definition) bool { return def.Name == name })
	if idx < 0 {
		return Definition{}, false
	}

	return schema[idx], true
}

// Definitions lists the operation table in declaration order.
func Definitions() []Definition {
	return slices.Clone(schema)
}
