package view

import (
	"context"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dbTimeout = 5 * time.Second

var wonPrinter = message.NewPrinter(language.Korean)

// FormatWon renders a KRW amount with thousands separators.
func FormatWon(amount int64) string {
	if amount == 0 {
		return ""
	}

	return wonPrinter.Sprintf("%d", amount)
}

// FormatTimestamp formats a time.Time for table display.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
