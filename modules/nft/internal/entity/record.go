package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecordKind string

const (
	RecordKindNFT    RecordKind = "NFT"
	RecordKindGeoNFT RecordKind = "GEONFT"

	// RecordKindContent holds raw uploaded asset bytes for the record-store
	// storage mechanism.
	RecordKindContent RecordKind = "CONTENT"
)

// Record is the storage-agnostic envelope every backend persists. Fields is a
// flat string map holding queryable scalars plus a full serialized copy of
// the domain object under a well-known key, so any backend that can store a
// string map can hold a record without knowing the domain shape.
type Record struct {
	ID          uuid.UUID
	Kind        RecordKind
	Name        string
	Description string
	OwnerID     uuid.UUID
	Fields      map[string]string
	CreatedAt   time.Time
}
