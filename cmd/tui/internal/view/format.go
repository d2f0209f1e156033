package view

import (
	"context"
	"fmt"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatCoins formats a whole-coin amount, with an explicit sign for
// negative values.
func FormatCoins(coins int64) string {
	return fmt.Sprintf("%d", coins)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// PreviousWeekStart returns the Sunday starting the previous week as
// YYYY-MM-DD, the usual week to pay out. Weeks run Sunday..Saturday and
// the date doubles as the payout idempotency key, so the default must
// match the key the scheduler would use.
func PreviousWeekStart() string {
	return previousWeekStart(time.Now())
}

func previousWeekStart(now time.Time) string {
	return now.AddDate(0, 0, -int(now.Weekday())-7).Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
