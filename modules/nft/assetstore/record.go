package assetstore

import (
	"context"
	"encoding/base64"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

// Content record field keys.
const (
	ContentKeyData = "Content.Data"
	ContentKeyName = "Content.Name"
	ContentKeyType = "Content.Type"
)

// RecordStore keeps asset bytes inside a record store and hands out URLs
// pointing at this service's own content endpoint. Useful when no external
// pinning service is configured, at the cost of URLs only resolving while the
// service is up.
type RecordStore struct {
	records datagateway.RecordDataGateway

	// publicBaseURL is the externally reachable base of this service's HTTP
	// API, e.g. https://nft.example.com.
	publicBaseURL string
}

var _ datagateway.AssetStore = (*RecordStore)(nil)

func NewRecordStore(records datagateway.RecordDataGateway, publicBaseURL string) *RecordStore {
	return &RecordStore{
		records:       records,
		publicBaseURL: publicBaseURL,
	}
}

func (s *RecordStore) UploadAsset(ctx context.Context, data []byte, name string) (string, error) {
	return s.store(ctx, data, name, "application/octet-stream")
}

func (s *RecordStore) UploadText(ctx context.Context, text string, name string) (string, error) {
	return s.store(ctx, []byte(text), name, "application/json")
}

func (s *RecordStore) store(ctx context.Context, data []byte, name, contentType string) (string, error) {
	rec := &entity.Record{
		ID:        uuid.New(),
		Kind:      entity.RecordKindContent,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Fields: map[string]string{
			ContentKeyData: base64.StdEncoding.EncodeToString(data),
			ContentKeyName: name,
			ContentKeyType: contentType,
		},
	}
	if _, err := s.records.SaveRecord(ctx, rec); err != nil {
		return "", errors.Wrap(err, "can't save content record")
	}
	contentURL, err := url.JoinPath(s.publicBaseURL, "/nft/v1/content", rec.ID.String())
	if err != nil {
		return "", errors.Wrap(err, "can't build content url")
	}
	return contentURL, nil
}

// LoadContent reads stored asset bytes back for serving.
func LoadContent(ctx context.Context, records datagateway.RecordDataGateway, id uuid.UUID) (data []byte, contentType string, err error) {
	rec, err := records.LoadRecordByID(ctx, id)
	if err != nil {
		return nil, "", errors.Wrapf(err, "can't load content record %s", id)
	}
	if rec.Kind != entity.RecordKindContent {
		return nil, "", errors.Errorf("record %s is not content", id)
	}
	data, err = base64.StdEncoding.DecodeString(rec.Fields[ContentKeyData])
	if err != nil {
		return nil, "", errors.Wrapf(err, "can't decode content record %s", id)
	}
	return data, rec.Fields[ContentKeyType], nil
}
