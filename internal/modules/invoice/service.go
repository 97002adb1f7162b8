package invoice

import (
	"context"
	"fmt"
	"math"

	"hotel/internal/domain"
	"hotel/internal/events"
	"hotel/internal/metrics"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"

	"go.uber.org/zap"
)

const maxNumberAttempts = 3

type Service struct {
	invoices  InvoiceRepository
	tx        Transactor
	notifier  NotificationSender
	publisher events.Publisher
	metrics   *metrics.Metrics
	settings  Settings
	clock     clock.Clock
	log       *zap.Logger
}

func NewService(
	invoices InvoiceRepository,
	tx Transactor,
	notifier NotificationSender,
	publisher events.Publisher,
	m *metrics.Metrics,
	settings Settings,
	clk clock.Clock,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if settings.NumberPrefix == "" {
		settings.NumberPrefix = "FAC"
	}
	return &Service{
		invoices:  invoices,
		tx:        tx,
		notifier:  notifier,
		publisher: publisher,
		metrics:   m,
		settings:  settings,
		clock:     clk,
		log:       log,
	}
}

// Generate issues the invoice of a completed payment. The number is
// max(sequence)+1 read inside the transaction; losing a race on the unique
// sequence index retries with the next number.
func (s *Service) Generate(ctx context.Context, actorID int64, role domain.UserRole, paymentID int64) (*domain.Invoice, error) {
	var (
		inv     *domain.Invoice
		guestID int64
		err     error
	)
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		inv, guestID, err = s.generateOnce(ctx, actorID, role, paymentID)
		if err == nil || !errs.Is(err, repository.ErrConflict) {
			break
		}
		s.log.Warn("invoice number taken, retrying", zap.Int("attempt", attempt), zap.Int64("payment_id", paymentID))
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice issued", zap.Int64("invoice_id", inv.ID), zap.String("number", inv.Number))
	s.metrics.InvoiceIssued()
	if s.notifier != nil {
		if err := s.notifier.Send(context.WithoutCancel(ctx), guestID, domain.NotifInvoiceIssued, "Factura emitida",
			fmt.Sprintf("La factura %s por %.2f está disponible.", inv.Number, inv.Total)); err != nil {
			s.log.Warn("send notification", zap.Int64("user_id", guestID), zap.Error(err))
		}
	}
	events.PublishAsync(ctx, s.publisher, s.log, events.Event{
		Type:     events.InvoiceIssued,
		EntityID: inv.ID,
		ActorID:  actorID,
		Payload: map[string]any{
			"numero": inv.Number,
			"pagoId": inv.PaymentID,
			"total":  inv.Total,
		},
	})

	return s.Get(ctx, actorID, role, inv.ID)
}

func (s *Service) generateOnce(ctx context.Context, actorID int64, role domain.UserRole, paymentID int64) (*domain.Invoice, int64, error) {
	var inv *domain.Invoice
	var guestID int64

	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		p, err := tx.Payments.GetByID(ctx, paymentID)
		if err != nil {
			if errs.Is(err, repository.ErrNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if p.Reservation == nil {
			return errs.Newf("payment %d has no reservation", p.ID)
		}
		if !role.IsStaff() && p.Reservation.UserID != actorID {
			return ErrPaymentNotFound
		}
		if p.Status != domain.PaymentCompleted {
			return errs.Wrapf(ErrPaymentNotCompleted, "payment %d is %s", p.ID, p.Status)
		}
		guestID = p.Reservation.UserID

		exists, err := tx.Invoices.ExistsForPayment(ctx, p.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyInvoiced
		}

		seq, err := tx.Invoices.NextSequence(ctx)
		if err != nil {
			return err
		}

		subtotal, tax := domain.SplitTaxInclusive(p.Amount, s.settings.TaxRate)
		inv = &domain.Invoice{
			PaymentID: p.ID,
			Sequence:  seq,
			Number:    domain.FormatInvoiceNumber(s.settings.NumberPrefix, seq),
			Subtotal:  subtotal,
			Tax:       tax,
			Total:     math.Round(p.Amount*100) / 100,
			Items:     lineItems(p),
			IssuedAt:  s.clock.Now().UTC(),
		}
		if err := tx.Invoices.Create(ctx, inv); err != nil {
			return err
		}
		return tx.Activities.Record(ctx, actorID, domain.ActionInvoiceIssued, domain.EntityInvoice, inv.ID,
			fmt.Sprintf("Factura %s emitida para pago #%d", inv.Number, p.ID))
	})
	return inv, guestID, err
}

// lineItems bills the stay as nights × nightly rate.
func lineItems(p *domain.Payment) []domain.InvoiceItem {
	res := p.Reservation
	nights := res.Nights()
	if nights < 1 {
		nights = 1
	}

	desc := fmt.Sprintf("Alojamiento reserva #%d", res.ID)
	unit := res.TotalPrice / float64(nights)
	if res.Room != nil {
		desc = fmt.Sprintf("Alojamiento habitación %s (%s) del %s al %s", res.Room.Number, res.Room.Type,
			res.CheckIn.Format(domain.DateLayout), res.CheckOut.Format(domain.DateLayout))
		unit = res.Room.Price
	}

	return []domain.InvoiceItem{{
		Description: desc,
		Quantity:    nights,
		UnitPrice:   unit,
		Total:       p.Amount,
	}}
}

func (s *Service) Get(ctx context.Context, actorID int64, role domain.UserRole, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	if !role.IsStaff() && ownerOf(inv) != actorID {
		return nil, ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) (*ListResult, error) {
	items, total, err := s.invoices.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: items, Total: total}, nil
}

func (s *Service) Settings() Settings { return s.settings }

func ownerOf(inv *domain.Invoice) int64 {
	if inv.Payment == nil || inv.Payment.Reservation == nil {
		return 0
	}
	return inv.Payment.Reservation.UserID
}
