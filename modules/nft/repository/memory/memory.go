package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

// Repository is a process-local record store. It backs the "memory" store
// name and is the store of choice in tests.
type Repository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entity.Record
}

var _ datagateway.RecordDataGateway = (*Repository)(nil)

func New() *Repository {
	return &Repository{
		records: make(map[uuid.UUID]*entity.Record),
	}
}

func (r *Repository) SaveRecord(_ context.Context, record *entity.Record) (*entity.Record, error) {
	if record.ID == uuid.Nil {
		return nil, errors.New("record id must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneRecord(record)
	r.records[record.ID] = stored
	return cloneRecord(stored), nil
}

func (r *Repository) LoadRecordByID(_ context.Context, id uuid.UUID) (*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, errors.Mark(errors.Errorf("record %s not found", id), errs.NotFound)
	}
	return cloneRecord(rec), nil
}

func (r *Repository) LoadRecordsByField(_ context.Context, kind entity.RecordKind, key, value string) ([]*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Record, 0)
	for _, rec := range r.records {
		if rec.Kind == kind && rec.Fields[key] == value {
			out = append(out, cloneRecord(rec))
		}
	}
	return out, nil
}

func (r *Repository) LoadRecordsByOwner(_ context.Context, kind entity.RecordKind, ownerID uuid.UUID) ([]*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Record, 0)
	for _, rec := range r.records {
		if rec.Kind == kind && rec.OwnerID == ownerID {
			out = append(out, cloneRecord(rec))
		}
	}
	return out, nil
}

func (r *Repository) LoadAllRecords(_ context.Context, kind entity.RecordKind) ([]*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Record, 0)
	for _, rec := range r.records {
		if rec.Kind == kind {
			out = append(out, cloneRecord(rec))
		}
	}
	return out, nil
}

func cloneRecord(rec *entity.Record) *entity.Record {
	clone := *rec
	clone.Fields = lo.Assign(map[string]string{}, rec.Fields)
	return &clone
}
