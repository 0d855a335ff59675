package settlement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Notifier receives settlement lifecycle events. Delivery to drivers or
// operators is an external collaborator; the engine only announces what
// happened.
type Notifier interface {
	SettlementCreated(ctx context.Context, settlementID, driverID uuid.UUID)
	SettlementRejected(ctx context.Context, settlementID, driverID uuid.UUID)
}

// LogNotifier writes settlement events to the structured log. It is the
// default sink when no delivery pipeline is attached.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SettlementCreated(_ context.Context, settlementID, driverID uuid.UUID) {
	slog.Info("settlement created", "settlement_id", settlementID, "driver_id", driverID)
}

func (n *LogNotifier) SettlementRejected(_ context.Context, settlementID, driverID uuid.UUID) {
	slog.Info("settlement rejected", "settlement_id", settlementID, "driver_id", driverID)
}
