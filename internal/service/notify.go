package service

import (
	"context"

	log "github.com/sirupsen/logrus"
)

const (
	TopicRegistrationCreated   = "registration.created"
	TopicRegistrationCancelled = "registration.cancelled"
	TopicReminderUpdated       = "registration.reminder"
	TopicBookmarkAdded         = "bookmark.added"
	TopicBookmarkRemoved       = "bookmark.removed"
)

// Notifier delivers workflow outcomes to interested listeners. *rabbitmq.Publisher implements it.
type Notifier interface {
	Notify(ctx context.Context, routingKey string, payload any) error
}

// notify never fails the caller: a lost notification does not undo a stored change.
func notify(ctx context.Context, n Notifier, routingKey string, payload any) {
	if n == nil {
		log.WithField("topic", routingKey).Debug("[Notify] no notifier configured")
		return
	}
	if err := n.Notify(ctx, routingKey, payload); err != nil {
		log.WithError(err).WithField("topic", routingKey).Warn("[Notify] failed to publish")
	}
}
