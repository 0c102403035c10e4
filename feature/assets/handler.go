package assets

import (
	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for asset sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/:productID/plan", h.HandlePlan)
	group.Post("/:productID/sync", h.HandleSync)
}

// HandlePlan computes the asset action plan for a product.
// @Summary Plan asset sync
// @Description Compute the action plan for a product's assets without applying it.
// @Tags assets
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} planResponse "Asset plan"
// @Failure 409 {object} map[string]string "Duplicate draft key"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/{productID}/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	productID := c.Params("productID")
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Plan(c.Context(), productID)
	if err != nil {
		return planError(c, l, err)
	}
	return c.JSON(toPlanResponse(plan))
}

// HandleSync reconciles a product's assets against its draft document.
// @Summary Sync assets
// @Description Reconcile a product's assets against its draft document.
// @Tags assets
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param dry_run query bool false "Compute the plan without applying it"
// @Success 200 {object} syncResponse "Sync result"
// @Failure 409 {object} map[string]string "Duplicate draft key"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/{productID}/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	productID := c.Params("productID")
	dryRun := c.QueryBool("dry_run")
	l := logger.WithRayID(h.service.logger, c)

	plan, stats, err := h.service.Sync(c.Context(), productID, dryRun)
	if err != nil {
		return planError(c, l, err)
	}

	return c.JSON(syncResponse{
		Plan:   toPlanResponse(plan),
		Stats:  stats,
		DryRun: dryRun,
	})
}
