package datagateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

// RecordDataGateway persists and loads the storage-agnostic record envelope.
// Implementations return an error kinded errs.NotFound when an id does not
// exist, and empty slices (not errors) for list queries with no matches.
type RecordDataGateway interface {
	// SaveRecord upserts a record and returns the stored copy.
	SaveRecord(ctx context.Context, record *entity.Record) (*entity.Record, error)

	LoadRecordByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)

	// LoadRecordsByField returns records of the given kind whose flattened
	// field under key equals value exactly.
	LoadRecordsByField(ctx context.Context, kind entity.RecordKind, key, value string) ([]*entity.Record, error)

	LoadRecordsByOwner(ctx context.Context, kind entity.RecordKind, ownerID uuid.UUID) ([]*entity.Record, error)

	LoadAllRecords(ctx context.Context, kind entity.RecordKind) ([]*entity.Record, error)
}
