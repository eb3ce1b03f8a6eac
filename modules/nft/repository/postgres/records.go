package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

func (r *Repository) SaveRecord(ctx context.Context, record *entity.Record) (*entity.Record, error) {
	fields, err := marshalFields(record.Fields)
	if err != nil {
		return nil, err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO nft_records (id, kind, name, description, owner_id, fields, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			owner_id = EXCLUDED.owner_id,
			fields = EXCLUDED.fields
	`, record.ID, string(record.Kind), record.Name, record.Description, record.OwnerID, fields, record.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "error during exec")
	}
	return record, nil
}

func (r *Repository) LoadRecordByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, name, description, owner_id, fields, created_at
		FROM nft_records
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	model, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[recordModel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Mark(errors.Errorf("record %s not found", id), errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during row collect")
	}
	return mapRecordModelToType(model)
}

func (r *Repository) LoadRecordsByField(ctx context.Context, kind entity.RecordKind, key, value string) ([]*entity.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, name, description, owner_id, fields, created_at
		FROM nft_records
		WHERE kind = $1 AND fields->>$2 = $3
	`, string(kind), key, value)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return collectRecords(rows)
}

func (r *Repository) LoadRecordsByOwner(ctx context.Context, kind entity.RecordKind, ownerID uuid.UUID) ([]*entity.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, name, description, owner_id, fields, created_at
		FROM nft_records
		WHERE kind = $1 AND owner_id = $2
	`, string(kind), ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return collectRecords(rows)
}

func (r *Repository) LoadAllRecords(ctx context.Context, kind entity.RecordKind) ([]*entity.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, name, description, owner_id, fields, created_at
		FROM nft_records
		WHERE kind = $1
		ORDER BY created_at
	`, string(kind))
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]*entity.Record, error) {
	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[recordModel])
	if err != nil {
		return nil, errors.Wrap(err, "error during rows collect")
	}
	out := make([]*entity.Record, 0, len(models))
	for _, model := range models {
		rec, err := mapRecordModelToType(model)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
