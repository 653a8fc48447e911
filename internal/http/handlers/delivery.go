package handlers

import (
	"net/http"

	"service-checkout-delivery/internal/logx"
)

// DeliveryHandler handles HTTP requests for checkout delivery resources.
type DeliveryHandler struct {
	options deliveryOptionsUsecase
	methods deliveryMethodUsecase
	logger  logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, options deliveryOptionsUsecase, methods deliveryMethodUsecase) *DeliveryHandler {
	return &DeliveryHandler{options: options, methods: methods, logger: logx.OrNop(logger)}
}

// ListDeliveryOptions handles GET /checkouts/{id}/delivery-options.
// @Summary Способы доставки чекаута
// @Description Возвращает кэшированный набор способов доставки, обновляя его если он устарел
// @Tags delivery
// @Produce json
// @Param id path string true "Checkout token"
// @Success 200 {object} deliveryOptionsResponse
// @Failure 400 {object} ErrorResponse "invalid checkout id"
// @Failure 404 {object} ErrorResponse "checkout not found"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /checkouts/{id}/delivery-options [get]
func (h *DeliveryHandler) ListDeliveryOptions(w http.ResponseWriter, r *http.Request) {
	id, err := checkoutIDFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := withRequestTimeout(r.Context())
	defer cancel()

	set, err := h.options.GetOrRefreshDeliveryOptions(ctx, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, setToResponse(set))
}

// ListCollectionPoints handles GET /checkouts/{id}/collection-points.
// @Summary Пункты самовывоза
// @Tags delivery
// @Produce json
// @Param id path string true "Checkout token"
// @Success 200 {object} collectionPointsResponse
// @Failure 400 {object} ErrorResponse "invalid checkout id"
// @Failure 404 {object} ErrorResponse "checkout not found"
// @Router /checkouts/{id}/collection-points [get]
func (h *DeliveryHandler) ListCollectionPoints(w http.ResponseWriter, r *http.Request) {
	id, err := checkoutIDFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := withRequestTimeout(r.Context())
	defer cancel()

	points, err := h.options.ListCollectionPoints(ctx, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pointsToResponse(points))
}

// AssignDeliveryMethod handles PUT /checkouts/{id}/delivery-method.
// @Summary Выбрать способ доставки
// @Description Назначает способ доставки или пункт самовывоза, либо снимает назначение (type=none)
// @Tags delivery
// @Accept json
// @Param id path string true "Checkout token"
// @Param request body assignDeliveryMethodRequest true "Delivery method"
// @Success 204
// @Failure 400 {object} ErrorResponse "invalid input or selection"
// @Failure 404 {object} ErrorResponse "checkout not found"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /checkouts/{id}/delivery-method [put]
func (h *DeliveryHandler) AssignDeliveryMethod(w http.ResponseWriter, r *http.Request) {
	id, err := checkoutIDFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req assignDeliveryMethodRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	method, err := req.toModel()
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := withRequestTimeout(r.Context())
	defer cancel()

	if err := h.methods.AssignDeliveryMethod(ctx, id, method); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
