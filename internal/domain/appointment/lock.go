package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Locker serialises bookings that touch the same professional and day.
// Acquire returns ok=false when another holder owns the key.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}

func BookingLockKey(professionalID string, day time.Time) string {
	return fmt.Sprintf("lock:booking:%s:%s", professionalID, day.UTC().Format(timezone.DateLayout))
}
