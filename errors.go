package notifme

import (
	"errors"
	"fmt"
)

// ErrNotFound matches errors of KindNotFound via errors.Is.
var ErrNotFound = errors.New("notification sender not found")

// Kind classifies a dispatch failure.
type Kind int

const (
	// KindNotFound means the sender executable could not be located.
	KindNotFound Kind = iota + 1
	// KindSpawn means the executable was found but could not be started.
	KindSpawn
	// KindWait means waiting on the started process failed.
	KindWait
	// KindExit means the sender ran and did not succeed: a non-zero exit
	// status or termination by a signal.
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindSpawn:
		return "spawn"
	case KindWait:
		return "wait"
	case KindExit:
		return "exit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by Send for every failure mode.
type Error struct {
	Kind     Kind
	Binary   string
	ExitCode int // set for KindExit; -1 when killed by a signal
	Err      error
}

func (e *Error) Error() string {
	name := e.Binary
	if name == "" {
		name = "notification sender"
	}
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found: %v", name, e.Err)
	case KindSpawn:
		return fmt.Sprintf("failed to launch %s: %v", name, e.Err)
	case KindWait:
		return fmt.Sprintf("failed waiting for %s: %v", name, e.Err)
	case KindExit:
		if e.ExitCode < 0 && e.Err != nil {
			return fmt.Sprintf("%s terminated: %v", name, e.Err)
		}
		return fmt.Sprintf("%s exited with status %d", name, e.ExitCode)
	default:
		return fmt.Sprintf("%s: %v", name, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match not-found failures.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// ExitCode returns the sender's exit status if err is a KindExit failure.
func ExitCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindExit {
		return e.ExitCode, true
	}
	return 0, false
}
