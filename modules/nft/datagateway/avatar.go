package datagateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

// Wallet is a chain address registered to an avatar. IsDefault marks the
// wallet the avatar prefers to receive assets on.
type Wallet struct {
	Chain     nft.Chain
	Address   string
	IsDefault bool
}

// Avatar is the identity a mint destination can be expressed as.
type Avatar struct {
	ID       uuid.UUID
	Username string
	Email    string
	Wallets  []Wallet
}

// AvatarResolver looks avatars up by the identifiers a request may carry.
// Implementations return an error kinded errs.NotFound for unknown avatars.
type AvatarResolver interface {
	ResolveByID(ctx context.Context, id uuid.UUID) (*Avatar, error)
	ResolveByUsername(ctx context.Context, username string) (*Avatar, error)
	ResolveByEmail(ctx context.Context, email string) (*Avatar, error)
}
