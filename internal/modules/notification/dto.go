package notification

import "hotel/internal/domain"

type ListResult struct {
	Items  []domain.Notification `json:"items"`
	Unread int64                 `json:"noLeidas"`
}
