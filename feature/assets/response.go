package assets

import (
	"errors"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/syncer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// actionReport is one planned action with its kind made explicit, since the
// concrete action types lose their identity in plain JSON.
type actionReport struct {
	Kind   syncer.ActionKind `json:"kind"`
	Action reconcile.Action  `json:"action"`
}

type planResponse struct {
	ProductID string            `json:"product_id"`
	Resource  string            `json:"resource"`
	UpToDate  bool              `json:"up_to_date"`
	Actions   []actionReport    `json:"actions"`
	Summary   syncer.Statistics `json:"summary"`
}

type syncResponse struct {
	Plan   planResponse      `json:"plan"`
	Stats  syncer.Statistics `json:"stats"`
	DryRun bool              `json:"dry_run"`
}

func toPlanResponse(plan *syncer.Plan) planResponse {
	reports := make([]actionReport, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		reports = append(reports, actionReport{Kind: syncer.KindOf(action), Action: action})
	}
	return planResponse{
		ProductID: plan.ProductID,
		Resource:  plan.Resource,
		UpToDate:  plan.UpToDate(),
		Actions:   reports,
		Summary:   plan.Summary,
	}
}

// planError maps reconciliation failures to HTTP statuses: a duplicate
// draft key is a conflict in the caller's data, everything else is internal.
func planError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var dup *reconcile.DuplicateKeyError
	if errors.As(err, &dup) {
		l.Warn("Duplicate draft key", zap.String("key", dup.Key), zap.String("collection", dup.Collection))
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": dup.Error(),
		})
	}

	l.Error("Sync failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
