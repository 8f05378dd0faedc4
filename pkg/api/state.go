package api

import (
	"fastfoodpos/pkg/catalog"
	"fastfoodpos/pkg/order"
	"fastfoodpos/pkg/order/memory"
)

// State is the data shared by every request handler. It is built once at
// startup and discarded on shutdown.
type State struct {
	Catalog *catalog.Store
	Orders  order.Repository
}

// NewState returns a State with the default menu and no orders.
func NewState() *State {
	return &State{
		Catalog: catalog.NewSeededStore(),
		Orders:  memory.New(),
	}
}
