package notification

import (
	"context"

	"hotel/internal/domain"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"

	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
}

// Pusher delivers an event to the live sockets of a user.
type Pusher interface {
	Push(userID int64, evt Event) int
}

type Service struct {
	repo   NotificationRepository
	pusher Pusher
	log    *zap.Logger
}

func NewService(repo NotificationRepository, pusher Pusher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, pusher: pusher, log: log}
}

// Send stores an in-app notification and pushes it to any open socket of
// the user. Offline users read it later from the list.
func (s *Service) Send(ctx context.Context, userID int64, typ domain.NotificationType, title, message string) error {
	if userID <= 0 {
		return nil
	}
	n := &domain.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return errs.Wrap(err, "store notification")
	}
	if s.pusher != nil {
		delivered := s.pusher.Push(userID, Event{Type: EventNotification, Payload: n})
		s.log.Debug("notification pushed", zap.Int64("user_id", userID), zap.String("type", string(typ)), zap.Int("sockets", delivered))
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID int64, limit int) (*ListResult, error) {
	items, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return &ListResult{Items: items, Unread: unread}, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, userID, id int64) error {
	if err := s.repo.MarkAsRead(ctx, id, userID); err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID)
}
