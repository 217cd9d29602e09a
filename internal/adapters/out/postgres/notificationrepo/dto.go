// Package notificationrepo provides an outbox-backed Notifier implementation.
// Lifecycle messages are written as rows in a notifications table rather than
// pushed to users directly; a separate delivery process (push gateway, SMS
// bridge) drains the table. This keeps the command path fast and makes
// message handoff durable across restarts.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"
)

// Audience values for outbox rows.
const (
	// AudienceUser targets one recipient named in RecipientID.
	AudienceUser = "user"
	// AudiencePartners fans out to every available delivery partner,
	// minus the IDs listed in ExcludedIDs.
	AudiencePartners = "partners"
)

// NotificationDTO represents one undelivered message in the outbox.
// Rows are append-only from the application's side; the draining process
// deletes or marks them as it goes.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID *uuid.UUID `gorm:"type:uuid;index"`
	Audience    string     `gorm:"type:varchar(16)"`
	TemplateKey string     `gorm:"type:varchar(64)"`
	DeliveryID  uuid.UUID  `gorm:"type:uuid;index"`
	OrderID     uuid.UUID  `gorm:"type:uuid"`

	// ExcludedIDs holds comma-joined partner UUIDs a broadcast must skip,
	// typically the partner who just won an accept race.
	ExcludedIDs string

	CreatedAt time.Time
}

// TableName specifies the database table name for outbox rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}
