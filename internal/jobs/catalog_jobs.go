package jobs

import (
	"context"

	"bikeshop-backend/internal/logger"
)

// RefreshCatalogRollups recomputes every bike's derived active-contract and
// rental-count columns. The columns are kept current after contract writes;
// this sweep repairs any drift, e.g. after manual database edits.
func (jr *JobRunner) RefreshCatalogRollups() {
	jr.runWithRecovery("RefreshCatalogRollups", func() {
		ctx := context.Background()

		touched, err := jr.store.BikeRepository.RefreshAllRollups(ctx)
		if err != nil {
			logger.Error("Failed to refresh catalog rollups", "error", err)
			return
		}
		logger.Info("Refreshed catalog rollups", "bikes", touched)
	})
}
