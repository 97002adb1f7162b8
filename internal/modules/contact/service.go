package contact

import (
	"context"
	"fmt"
	"strings"

	"hotel/internal/domain"
	"hotel/internal/events"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/errs"
	"hotel/internal/pkg/validator"
	"hotel/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	contacts  ContactRepository
	tx        Transactor
	publisher events.Publisher
	clock     clock.Clock
	log       *zap.Logger
}

func NewService(contacts ContactRepository, tx Transactor, publisher events.Publisher, clk clock.Clock, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Service{contacts: contacts, tx: tx, publisher: publisher, clock: clk, log: log}
}

// ValidationError carries the failed rule per JSON field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid fields: %v", e.Fields) }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func (s *Service) Create(ctx context.Context, req CreateContactRequest) (*domain.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	c := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.ContactNew,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info("contact message received", zap.Int64("contact_id", c.ID))
	events.PublishAsync(ctx, s.publisher, s.log, events.Event{
		Type:     events.ContactReceived,
		EntityID: c.ID,
		Status:   string(c.Status),
		Payload:  map[string]any{"asunto": c.Subject},
	})
	return c, nil
}

func (s *Service) List(ctx context.Context, status domain.ContactStatus, limit, offset int) (*ListResult, error) {
	if status != "" && !status.Valid() {
		return nil, errs.Wrapf(ErrValidation, "unknown estado %q", status)
	}
	items, total, err := s.contacts.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: items, Total: total}, nil
}

// SetStatus moves a message to LEIDO or ARCHIVADO. RESPONDIDO is only
// reachable through Reply.
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.ContactStatus) (*domain.Contact, error) {
	if status != domain.ContactRead && status != domain.ContactArchived {
		return nil, errs.Wrapf(ErrInvalidStatus, "estado %q", status)
	}
	if err := s.contacts.SetStatus(ctx, id, status); err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.get(ctx, id)
}

// Reply stores the staff answer and marks the message RESPONDIDO.
func (s *Service) Reply(ctx context.Context, actorID, id int64, reply string) (*domain.Contact, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, errs.Wrap(ErrValidation, "respuesta is empty")
	}

	err := s.tx.Within(ctx, func(tx *repository.Tx) error {
		c, err := tx.Contacts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c.Status == domain.ContactArchived {
			return ErrAlreadyArchived
		}
		if err := tx.Contacts.SaveReply(ctx, id, reply, actorID, s.clock.Now().UTC()); err != nil {
			return err
		}
		return tx.Activities.Record(ctx, actorID, domain.ActionContactReplied, domain.EntityContact, id,
			fmt.Sprintf("Respuesta enviada a %s: %s", c.Email, c.Subject))
	})
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.log.Info("contact message replied", zap.Int64("contact_id", id), zap.Int64("actor_id", actorID))
	return s.get(ctx, id)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
