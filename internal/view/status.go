package view

import (
	"fmt"

	"github.com/adrirubim/laserpack/internal/i18n"
	"github.com/adrirubim/laserpack/internal/models"
)

// StatusLabels builds the order status code → label table from the
// message catalog. Only the six canonical codes get a label; everything
// else is handled by StatusLabel's fallback.
func StatusLabels(tr i18n.Translator) map[int]string {
	codes := []int{
		models.OrderStatusPlanned,
		models.OrderStatusSetup,
		models.OrderStatusLaunched,
		models.OrderStatusInProgress,
		models.OrderStatusSuspended,
		models.OrderStatusCompleted,
	}
	labels := make(map[int]string, len(codes))
	for _, code := range codes {
		labels[code] = tr(fmt.Sprintf("order.status.%d", code), nil)
	}
	return labels
}

// StatusLabel resolves an order status code against the label table. A
// code without a label renders through a generic fallback embedding the
// raw code, so new ERP statuses stay visible instead of disappearing.
func StatusLabel(code int, labels map[int]string) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return fmt.Sprintf("Status %d", code)
}
