package interfaces

import (
	"context"

	"arquitetura_xpto/internal/domain/engine"
)

// IEngineConfigRepository resolves the pricing configuration for an office.
// A missing override is reported with found=false, not an error; the caller
// decides whether to fall back to the stock configuration.

type IEngineConfigRepository interface {
	GetByOfficeID(ctx context.Context, officeID string) (cfg engine.Configuration, found bool, err error)
}
