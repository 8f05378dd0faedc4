package api

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"fastfoodpos/pkg/order"
	"fastfoodpos/pkg/otel"
)

// listProductsHandler lists the menu.
// @Summary List products
// @Description Returns the fixed product catalog
// @Produce json
// @Success 200 {array} catalog.Product
// @Router /api/products [get]
func (s *Server) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	products := s.state.Catalog.List()
	span.SetAttributes(attribute.Int("products.count", len(products)))
	s.writeJSON(ctx, w, http.StatusOK, products)
}

// createOrderHandler accepts a new order.
// @Summary Create order
// @Description Stores the order as submitted; total is not recomputed
// @Accept json
// @Produce json
// @Param order body order.Order true "Order"
// @Success 201 {object} order.Order
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (s *Server) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	o, err := order.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		span.SetStatus(codes.Error, "malformed order")
		s.log.Info(ctx, "reject order", "error", err)
		s.writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := s.state.Orders.Append(ctx, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "append order")
		s.log.Error(ctx, "append order", "error", err)
		s.writeError(ctx, w, http.StatusInternalServerError, "could not store order")
		return
	}
	span.SetAttributes(attribute.Int("order.items", len(stored.Items)), attribute.Float64("order.total", stored.Total))
	s.log.Info(ctx, "order accepted", "items", len(stored.Items), "total", stored.Total)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, stored); err != nil {
			span.RecordError(err)
			s.log.Warn(ctx, "drop order from feed", "error", err)
		}
	}

	s.writeJSON(ctx, w, http.StatusCreated, stored)
}
