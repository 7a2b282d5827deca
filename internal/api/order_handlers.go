package api

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/export"
	"github.com/storefront/internal/model"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	notifyTimeout   = 15 * time.Second
)

// CreateOrder godoc
// @Summary Place order
// @Description Place a customer order. Name and email are required
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Order"
// @Success 201 {object} map[string]interface{} "Order placed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/orders [post]
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	req.Normalize()

	switch {
	case req.Name == "":
		respondError(w, apperr.Validation("name", "Name and email are required"))
		return
	case req.Email == "":
		respondError(w, apperr.Validation("email", "Name and email are required"))
		return
	}
	if err := model.Validate(&req); err != nil {
		respondError(w, err)
		return
	}

	order, err := h.orders.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.notifyOrder(order)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Order placed successfully",
		"data":    order,
	})
}

// ListOrders godoc
// @Summary List orders
// @Description List all orders, newest first
// @Tags Orders
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Orders"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /api/orders [get]
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
	})
}

// CountOrders godoc
// @Summary Count orders
// @Tags Orders
// @Produce json
// @Success 200 {object} map[string]interface{} "Order count"
// @Router /api/orders/stats/count [get]
func (h *Handler) CountOrders(w http.ResponseWriter, r *http.Request) {
	count, err := h.orders.Count(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}

// ExportOrders godoc
// @Summary Export orders
// @Description Download every order as an Excel workbook
// @Tags Orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security CookieAuth
// @Security BearerAuth
// @Success 200 {file} file "Orders workbook"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /export/orders [get]
func (h *Handler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteOrders(&buf, orders); err != nil {
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", h.now().Format("20060102-150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Failed to send orders export: %v", err)
	}
}

func (h *Handler) notifyOrder(order *model.Order) {
	if h.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.OrderPlaced(ctx, order); err != nil {
			log.Printf("Warning: order %s notification failed: %v", order.ID, err)
		}
	}()
}
