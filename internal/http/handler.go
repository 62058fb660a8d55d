package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/warewise/packaging-service/internal/domain/dto"
	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/engine"
	"github.com/warewise/packaging-service/internal/i18n"
	"github.com/warewise/packaging-service/internal/metrics"
	"github.com/warewise/packaging-service/internal/middleware"
	"github.com/warewise/packaging-service/internal/service"
)

// Handler provides HTTP handlers for packaging, stock and composition routes.
type Handler struct {
	catalog     service.CatalogService
	stock       service.StockService
	composition service.CompositionService
}

// NewHandler creates a new Handler instance.
func NewHandler(catalog service.CatalogService, stock service.StockService, composition service.CompositionService) *Handler {
	return &Handler{
		catalog:     catalog,
		stock:       stock,
		composition: composition,
	}
}

// respondEngineError translates computation errors into HTTP responses.
func respondEngineError(builder *ResponseBuilder, err error) {
	var notFound *engine.PackagingNotFoundError
	var noBase *engine.NoBaseUnitDefinedError
	var invalid *engine.InvalidRequestError
	var noPallet *engine.NoFeasiblePalletError

	switch {
	case errors.As(err, &notFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyPackagingNotFound, err)
	case errors.As(err, &noBase):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNoBaseUnit, err)
	case errors.As(err, &invalid):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	case errors.As(err, &noPallet):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyNoFeasiblePallet, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// audit emits an async audit entry when a logging service is wired into the context.
func audit(c *gin.Context, action, description string, metadata map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, action, description, metadata)
		}
	}
}

// GetHierarchy handles GET /api/products/:product_id/packaging/hierarchy requests.
//
// @Summary      Get packaging hierarchy
// @Description  Returns the packaging hierarchy for a product, from the largest handling unit down to the base unit, with base-unit conversion factors per level.
// @Tags         Catalog
// @Produce      json
// @Param        product_id path string true "Product identifier"
// @Success      200 {object} dto.SuccessResponse "Packaging hierarchy"
// @Failure      404 {object} dto.ErrorResponse "Not found - product has no packaging or no base unit"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{product_id}/packaging/hierarchy [get]
func (h *Handler) GetHierarchy(c *gin.Context) {
	builder := NewResponseBuilder(c)

	productID := c.Param("product_id")
	c.Set("product_id", productID)

	start := time.Now()
	nodes, err := h.catalog.GetHierarchy(c.Request.Context(), productID)
	if err != nil {
		metrics.RecordEngineOperation(metrics.OpHierarchy, time.Since(start), "error")
		respondEngineError(builder, err)
		return
	}
	metrics.RecordEngineOperation(metrics.OpHierarchy, time.Since(start), "success")

	builder.SuccessOK(nodes)
}

// ConsolidateStock handles GET /api/products/:product_id/stock/consolidated requests.
//
// @Summary      Consolidate product stock
// @Description  Aggregates every stock record of a product into a single base-unit total, with a per-packaging breakdown and location count.
// @Tags         Stock
// @Produce      json
// @Param        product_id path string true "Product identifier"
// @Success      200 {object} dto.SuccessResponse "Consolidated stock"
// @Failure      404 {object} dto.ErrorResponse "Not found - product has no packaging or no base unit"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{product_id}/stock/consolidated [get]
func (h *Handler) ConsolidateStock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	productID := c.Param("product_id")
	c.Set("product_id", productID)

	consolidated, err := h.stock.Consolidate(c.Request.Context(), productID)
	if err != nil {
		respondEngineError(builder, err)
		return
	}

	builder.SuccessOK(consolidated)
}

// PlanPick handles POST /api/pickplan requests.
//
// @Summary      Plan a pick
// @Description  Decomposes a requested base-unit quantity into concrete handling units, preferring larger packaging first and bounded by available stock. The response reports any remaining quantity that stock could not cover.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Param        request body dto.PickPlanRequest true "Pick request"
// @Success      200 {object} dto.SuccessResponse "Pick plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - product has no packaging or no base unit"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/pickplan [post]
func (h *Handler) PlanPick(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.PickPlanRequest](c)
	if err != nil {
		key := i18n.ErrKeyInvalidRequestBody
		if verr, ok := err.(*dto.ValidationError); ok && verr == dto.ErrNegativeRequestedUnits {
			key = i18n.ErrKeyValidationRequestedUnits
		}
		builder.Error(http.StatusBadRequest, key, err)
		return
	}

	c.Set("product_id", req.ProductID)
	audit(c, "plan_pick", "Pick plan requested", map[string]interface{}{
		"product_id":           req.ProductID,
		"requested_base_units": req.RequestedBaseUnits,
	})

	plan, err := h.stock.PlanPick(c.Request.Context(), req.ProductID, req.RequestedBaseUnits)
	if err != nil {
		respondEngineError(builder, err)
		return
	}

	builder.SuccessOK(plan)
}

// SelectPallets handles POST /api/compositions/select requests.
//
// @Summary      Select pallets for a load
// @Description  Scores every available pallet against the requested product load and returns the best candidates, best first. Pallets that cannot carry the load's weight are excluded.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        request body dto.SelectPalletsRequest true "Load to place"
// @Success      200 {object} dto.SuccessResponse "Ranked pallet candidates"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - no pallet can carry the load"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/compositions/select [post]
func (h *Handler) SelectPallets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.SelectPalletsRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	audit(c, "select_pallets", "Pallet selection requested", map[string]interface{}{
		"item_count": len(req.Items),
	})

	items := toCompositionItems(req.Items)

	candidates, err := h.composition.SelectPallets(c.Request.Context(), items)
	if err != nil {
		respondEngineError(builder, err)
		return
	}

	builder.SuccessOK(candidates)
}

// ConfirmComposition handles POST /api/compositions/confirm requests.
//
// @Summary      Confirm a composition
// @Description  Records that an operator loaded the given items onto the chosen pallet. The realized utilization is stored as a composition outcome and the pallet's historical efficiency is refreshed from its trailing window.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        request body dto.ConfirmCompositionRequest true "Accepted composition"
// @Success      200 {object} dto.SuccessResponse "Recorded composition outcome"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown pallet"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - the pallet cannot carry the load"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/compositions/confirm [post]
func (h *Handler) ConfirmComposition(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.ConfirmCompositionRequest](c)
	if err != nil {
		if verr, ok := err.(*dto.ValidationError); ok {
			key := i18n.ErrKeyValidationItems
			if verr == dto.ErrMissingPalletID {
				key = i18n.ErrKeyValidationPalletID
			}
			builder.Error(http.StatusBadRequest, key, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	audit(c, "confirm_composition", "Composition confirmed", map[string]interface{}{
		"pallet_id":  req.PalletID,
		"item_count": len(req.Items),
	})

	candidate, err := h.composition.Confirm(c.Request.Context(), req.PalletID, toCompositionItems(req.Items))
	if err != nil {
		respondEngineError(builder, err)
		return
	}

	builder.SuccessOK(candidate)
}

// ClassifyComplexity handles POST /api/compositions/classify requests.
//
// @Summary      Classify composition complexity
// @Description  Estimates how demanding a composition is (low, medium, high) from its distinct product count, total quantity, and special handling constraints.
// @Tags         Compositions
// @Accept       json
// @Produce      json
// @Param        request body dto.ClassifyComplexityRequest true "Composition to classify"
// @Success      200 {object} dto.SuccessResponse "Complexity level"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/compositions/classify [post]
func (h *Handler) ClassifyComplexity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindAndValidate[dto.ClassifyComplexityRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	items := toCompositionItems(req.Items)

	level, err := h.composition.Classify(c.Request.Context(), items, req.HasConstraints)
	if err != nil {
		respondEngineError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"complexity": level})
}

// toCompositionItems converts request items into domain composition items.
func toCompositionItems(items []dto.CompositionItemRequest) []model.CompositionItem {
	out := make([]model.CompositionItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.CompositionItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return out
}
