package postgres

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

type recordModel struct {
	ID          uuid.UUID `db:"id"`
	Kind        string    `db:"kind"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Fields      []byte    `db:"fields"`
	CreatedAt   time.Time `db:"created_at"`
}

func marshalFields(fields map[string]string) ([]byte, error) {
	if fields == nil {
		fields = map[string]string{}
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "can't marshal record fields")
	}
	return out, nil
}

func mapRecordModelToType(model recordModel) (*entity.Record, error) {
	fields := make(map[string]string)
	if len(model.Fields) > 0 {
		if err := json.Unmarshal(model.Fields, &fields); err != nil {
			return nil, errors.Wrapf(err, "can't unmarshal fields of record %s", model.ID)
		}
	}
	return &entity.Record{
		ID:          model.ID,
		Kind:        entity.RecordKind(model.Kind),
		Name:        model.Name,
		Description: model.Description,
		OwnerID:     model.OwnerID,
		Fields:      fields,
		CreatedAt:   model.CreatedAt,
	}, nil
}
