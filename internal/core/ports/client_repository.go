package ports

import (
	"context"

	"shipping/internal/core/domain/model/client"
)

// ClientRepository resolves shipper accounts for authentication.
type ClientRepository interface {
	// FindByToken resolves the client owning the given bearer token.
	// Returns (nil, nil) when the token is unknown.
	FindByToken(ctx context.Context, token string) (*client.Client, error)
}
