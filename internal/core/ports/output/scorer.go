package ports

import (
	"context"

	"loan-approval-service/internal/core/domain"
)

// Scorer is the opaque scoring capability exposed by the pre-trained
// artifact: one validated record in, an approval probability in [0,1] out.
type Scorer interface {
	Score(ctx context.Context, rec *domain.ApplicationRecord) (float64, error)
}
