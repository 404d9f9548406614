package memory

import (
	"context"

	"github.com/accountsim/accountsim/internal/model"
)

var _ model.NotificationLog = (*NotificationLog)(nil)

// NotificationLog records names that are ready for verification and have not
// been consumed by a readiness check yet.
type NotificationLog struct {
	pending map[string]struct{}
}

func NewNotificationLog() *NotificationLog {
	return &NotificationLog{
		pending: make(map[string]struct{}),
	}
}

func (l *NotificationLog) Notify(_ context.Context, name string) {
	l.pending[name] = struct{}{}
}

// Ready reports whether name has a pending notification and consumes it.
// An absent name reports false and consumes nothing.
func (l *NotificationLog) Ready(_ context.Context, name string) bool {
	if _, ok := l.pending[name]; !ok {
		return false
	}

	delete(l.pending, name)

	return true
}
