package notificationrepo

import (
	"context"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutboxNotifier implements the Notifier port by writing outbox rows.
type OutboxNotifier struct {
	db *gorm.DB
}

// NewOutboxNotifier creates a new outbox-backed notifier.
func NewOutboxNotifier(db *gorm.DB) *OutboxNotifier {
	return &OutboxNotifier{db: db}
}

// Notify records one notification directive for its recipient.
func (n *OutboxNotifier) Notify(ctx context.Context, notification delivery.Notification) error {
	recipientID := notification.RecipientID.Bytes()

	dto := NotificationDTO{
		ID:          uuid.New(),
		RecipientID: &recipientID,
		Audience:    AudienceUser,
		TemplateKey: notification.TemplateKey,
		DeliveryID:  notification.DeliveryID.Bytes(),
		OrderID:     notification.OrderID.Bytes(),
	}

	return n.db.WithContext(ctx).Create(&dto).Error
}

// PruneOlderThan removes outbox rows created before the cutoff and reports
// how many were deleted. The cleanup job calls this on a schedule.
func (n *OutboxNotifier) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := n.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&NotificationDTO{})
	return result.RowsAffected, result.Error
}

// Broadcast records one fan-out directive for available delivery partners.
// The draining process resolves the current partner audience at send time, so
// partners who come online after the row is written still hear about it.
func (n *OutboxNotifier) Broadcast(ctx context.Context, notification delivery.Notification, exclude []kernel.UUID) error {
	excluded := make([]string, 0, len(exclude))
	for _, id := range exclude {
		excluded = append(excluded, id.String())
	}

	dto := NotificationDTO{
		ID:          uuid.New(),
		Audience:    AudiencePartners,
		TemplateKey: notification.TemplateKey,
		DeliveryID:  notification.DeliveryID.Bytes(),
		OrderID:     notification.OrderID.Bytes(),
		ExcludedIDs: strings.Join(excluded, ","),
	}

	return n.db.WithContext(ctx).Create(&dto).Error
}
