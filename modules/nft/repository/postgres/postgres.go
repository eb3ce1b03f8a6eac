package postgres

import (
	"github.com/gaze-network/nft-minter/internal/postgres"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
)

// Repository persists record envelopes in a single table with the flattened
// fields in a jsonb column, so field lookups stay index-friendly without a
// schema change per record kind.
type Repository struct {
	db postgres.DB
}

var _ datagateway.RecordDataGateway = (*Repository)(nil)

func NewRepository(db postgres.DB) *Repository {
	return &Repository{db: db}
}
