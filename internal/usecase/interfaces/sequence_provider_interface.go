package interfaces

import (
	"context"
	"time"
)

// ISequenceProvider hands out the next budget code sequence for the month of
// the reference time, already zero-padded (e.g. "042"). Uniqueness within the
// month is the provider's responsibility.

type ISequenceProvider interface {
	Next(ctx context.Context, ref time.Time) (string, error)
}
