// Package events publishes domain events after a transaction commits.
package events

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	ReservationCreated   = "reserva.creada"
	ReservationConfirmed = "reserva.confirmada"
	ReservationCheckIn   = "reserva.checkin"
	ReservationCheckOut  = "reserva.checkout"
	ReservationCancelled = "reserva.cancelada"
	ReservationNoShow    = "reserva.no_show"
	PaymentCompleted     = "pago.completado"
	InvoiceIssued        = "factura.emitida"
	RoomStatusChanged    = "habitacion.estado"
	ContactReceived      = "contacto.recibido"
)

type Event struct {
	Type       string         `json:"type"`
	EntityID   int64          `json:"entityId"`
	ActorID    int64          `json:"actorId,omitempty"`
	Status     string         `json:"estado,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// LogPublisher only logs; it is used when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, evt Event) error {
	p.log.Debug("event",
		zap.String("type", evt.Type),
		zap.Int64("entity_id", evt.EntityID),
		zap.String("estado", evt.Status),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// PublishAsync fires evt and logs failures; callers never fail on it.
func PublishAsync(ctx context.Context, p Publisher, log *zap.Logger, evt Event) {
	if p == nil {
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	if err := p.Publish(context.WithoutCancel(ctx), evt); err != nil && log != nil {
		log.Warn("publish event failed", zap.String("type", evt.Type), zap.Int64("entity_id", evt.EntityID), zap.Error(err))
	}
}
