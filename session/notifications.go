package session

import (
	"log"

	"pizzaria-storefront/models"
)

// maxQueued bounds the notifications kept between two requests
const maxQueued = 20

// NotificationQueue collects notifications until the next response drains them
type NotificationQueue struct {
	items []models.Notification
}

// Notify queues a notification, dropping the oldest when full
func (q *NotificationQueue) Notify(severity models.Severity, message string) {
	if severity == models.SeverityError {
		log.Printf("⚠️  Notification: %s", message)
	}
	if len(q.items) == maxQueued {
		q.items = q.items[1:]
	}
	q.items = append(q.items, models.Notification{Severity: severity, Message: message})
}

// Drain returns the queued notifications and empties the queue
func (q *NotificationQueue) Drain() []models.Notification {
	items := q.items
	q.items = nil
	return items
}
