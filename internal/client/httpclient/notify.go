package httpclient

import "context"

// Level is the severity of a user-visible notice.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(ctx context.Context, level Level, msg string)
}

// Notices emitted by the inbound hook.
const (
	MsgSessionExpired = "Your session has expired, please log in again"
	MsgRequestFailed  = "Request failed, please try again later"
	MsgNetworkError   = "Network error, please check your connection"
	MsgTimeout        = "The server did not answer in time"
)

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Level, string) {}
