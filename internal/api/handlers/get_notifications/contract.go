package get_notifications

import "github.com/m04kA/MediCare-Portal/internal/notify"

type Notifier interface {
	Drain() []notify.Notification
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
