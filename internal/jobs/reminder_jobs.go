package jobs

import (
	"context"
	"time"

	"bikeshop-backend/internal/logger"
)

// SendReturnReminders emails every customer whose ongoing rental ends within
// the next 24 hours.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		now := time.Now()

		contracts, err := jr.store.ContractRepository.ListOngoingEndingBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list contracts ending soon", "error", err)
			return
		}

		sent := 0
		for _, contract := range contracts {
			customer, err := jr.store.CustomerRepository.GetByID(ctx, contract.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for reminder", "contract", contract.Number, "error", err)
				continue
			}
			if customer.Email == "" {
				logger.Debug("Skipping reminder for customer without email", "contract", contract.Number)
				continue
			}
			bike, err := jr.store.BikeRepository.GetByID(ctx, contract.BikeID)
			if err != nil {
				logger.Error("Failed to load bike for reminder", "contract", contract.Number, "error", err)
				continue
			}

			if err := jr.services.Email.SendReturnReminder(ctx, customer.Email, customer.Name, bike.Name, contract.Number, contract.EndDate); err != nil {
				logger.Error("Failed to send return reminder", "contract", contract.Number, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent return reminders", "candidates", len(contracts), "sent", sent)
	})
}
