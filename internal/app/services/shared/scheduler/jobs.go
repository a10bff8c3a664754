package scheduler

import (
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
)

// ClinicJobs returns the background jobs of the clinic service.
func ClinicJobs(cfg *config.InternalConfig, appointments contracts.AppointmentUsecase, inventory contracts.InventoryUsecase) []Job {
	return []Job{
		{
			Name:    "appointment_reminder",
			Spec:    cfg.Notification.ReminderCronSpec,
			LockKey: constvars.RedisKeyReminderWorker,
			Run:     appointments.SendReminders,
		},
		{
			Name:    "low_stock_alert",
			Spec:    cfg.Inventory.LowStockCronSpec,
			LockKey: constvars.RedisKeyStockAlertWorker,
			Run:     inventory.ScanLowStock,
		},
		{
			Name:    "batch_expiry_alert",
			Spec:    cfg.Inventory.ExpiryCronSpec,
			LockKey: constvars.RedisKeyExpiryAlertWorker,
			Run:     inventory.ScanExpiringBatches,
		},
	}
}
