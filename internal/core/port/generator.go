package port

import (
	"context"
	"time"
)

// GenerationRequest carries the inputs of a single candidate generation.
// Empty Instructions and ProductDescription are replaced by fixed fallback
// text in the prompt.
type GenerationRequest struct {
	Layout             string
	Instructions       string
	ProductDescription string
}

// PostGenerator produces candidate post texts from an external model.
type PostGenerator interface {
	// GenerateCandidates performs one upstream call. Any failure to obtain
	// or parse candidates yields an empty slice and a nil error; only a
	// missing credential is reported, as ErrConfiguration.
	GenerateCandidates(ctx context.Context, req GenerationRequest) ([]string, error)
}

// Locker grants exclusive, expiring leases on a key across service
// instances.
type Locker interface {
	// Acquire returns a release func, or ErrGenerationInProgress when the
	// key is already leased.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}
