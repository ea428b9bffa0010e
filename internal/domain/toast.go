package domain

import (
	"context"
	"time"
)

const (
	// ToastTTL is how long an unread toast stays in the mailbox.
	ToastTTL = 5 * time.Second
	// MaxToastMessageLen bounds the stored message in bytes.
	MaxToastMessageLen = 512
)

// ToastType is the severity of a toast.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

// Toast is a one-shot notification shown on the next page render.
type Toast struct {
	Type    ToastType `json:"type"`
	Message string    `json:"message"`
}

// NewToast returns a toast with the message truncated to MaxToastMessageLen bytes on a rune boundary.
func NewToast(t ToastType, message string) Toast {
	if len(message) > MaxToastMessageLen {
		cut := MaxToastMessageLen
		for cut > 0 && !isRuneStart(message[cut]) {
			cut--
		}
		message = message[:cut]
	}
	return Toast{Type: t, Message: message}
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// ToastMailbox holds at most one pending toast per key.
// Put overwrites, Take reads and clears.
type ToastMailbox interface {
	Put(ctx context.Context, key string, toast Toast) error
	Take(ctx context.Context, key string) (*Toast, error)
	Clear(ctx context.Context, key string) error
}
