// Package notifme builds desktop notifications and dispatches them through
// an external notification sender such as notify-send.
package notifme

import (
	"context"
	"io"
	"log/slog"
	"strconv"
)

const (
	// DefaultIcon is the icon used when none is set.
	DefaultIcon = "dialog-information"
	// DefaultTimeout is the advisory auto-dismiss delay in milliseconds.
	DefaultTimeout = 5000
)

// Notification holds the fields of a single desktop notification.
// Setters overwrite the previous value and return the same Notification,
// so calls can be chained. A Notification may be sent any number of times.
type Notification struct {
	icon    string
	summary string
	body    string
	app     string
	timeout int

	sender Sender
	logger *slog.Logger
}

// Option configures a Notification at construction time.
type Option func(*Notification)

// WithSender replaces the sender used by Send.
func WithSender(s Sender) Option {
	return func(n *Notification) {
		if s != nil {
			n.sender = s
		}
	}
}

// WithLogger sets the logger used to trace dispatches.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notification) {
		if l != nil {
			n.logger = l
		}
	}
}

// New creates a Notification with default icon and timeout.
func New(opts ...Option) *Notification {
	n := &Notification{
		icon:    DefaultIcon,
		timeout: DefaultTimeout,
		sender:  NewCommandSender(""),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Summary sets the notification title.
func (n *Notification) Summary(text string) *Notification {
	n.summary = text
	return n
}

// Body sets the notification body.
func (n *Notification) Body(text string) *Notification {
	n.body = text
	return n
}

// App sets the application name. An empty name omits the -a flag.
func (n *Notification) App(name string) *Notification {
	n.app = name
	return n
}

// Icon sets the icon name or path.
func (n *Notification) Icon(name string) *Notification {
	n.icon = name
	return n
}

// Timeout sets the expire time in milliseconds. The value is passed
// through unchecked.
func (n *Notification) Timeout(ms int) *Notification {
	n.timeout = ms
	return n
}

// SummaryText returns the current summary.
func (n *Notification) SummaryText() string { return n.summary }

// BodyText returns the current body.
func (n *Notification) BodyText() string { return n.body }

// AppName returns the current application name.
func (n *Notification) AppName() string { return n.app }

// IconName returns the current icon name or path.
func (n *Notification) IconName() string { return n.icon }

// TimeoutMillis returns the current timeout in milliseconds.
func (n *Notification) TimeoutMillis() int { return n.timeout }

// Args returns the sender arguments for the current field values.
// Summary and body are always the last two arguments, even when empty.
func (n *Notification) Args() []string {
	args := make([]string, 0, 8)
	args = append(args, "-t", strconv.Itoa(n.timeout))
	if n.app != "" {
		args = append(args, "-a", n.app)
	}
	args = append(args, "-i", n.icon, n.summary, n.body)
	return args
}

// Send dispatches the notification and blocks until the sender exits.
// It returns nil when the sender exits with status 0 and an *Error
// otherwise.
func (n *Notification) Send(ctx context.Context) error {
	args := n.Args()
	n.logger.Debug("dispatching notification", "args", args)

	code, err := n.sender.Send(ctx, args)
	if err != nil {
		n.logger.Debug("notification dispatch failed", "error", err)
		return err
	}
	if code != 0 {
		err := &Error{Kind: KindExit, Binary: senderName(n.sender), ExitCode: code}
		n.logger.Debug("notification sender reported failure", "exit_code", code)
		return err
	}

	n.logger.Debug("notification sent")
	return nil
}

// Sent reports whether Send succeeded.
func (n *Notification) Sent(ctx context.Context) bool {
	return n.Send(ctx) == nil
}

// senderName returns the executable name of senders that expose one.
func senderName(s Sender) string {
	if b, ok := s.(interface{ Binary() string }); ok {
		return b.Binary()
	}
	return ""
}
