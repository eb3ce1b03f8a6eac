package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

func testRecord(kind entity.RecordKind, owner uuid.UUID, fields map[string]string) *entity.Record {
	return &entity.Record{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      "Mystic Sword",
		OwnerID:   owner,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
}

func TestSaveAndLoadRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	rec := testRecord(entity.RecordKindNFT, uuid.New(), map[string]string{"NFT.Title": "Mystic Sword"})
	saved, err := repo.SaveRecord(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, saved.ID)

	loaded, err := repo.LoadRecordByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Fields, loaded.Fields)
}

func TestSaveRecordRequiresID(t *testing.T) {
	t.Parallel()
	repo := New()

	_, err := repo.SaveRecord(context.Background(), &entity.Record{})
	require.Error(t, err)
}

func TestSaveRecordOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	rec := testRecord(entity.RecordKindNFT, uuid.New(), map[string]string{"NFT.Title": "before"})
	_, err := repo.SaveRecord(ctx, rec)
	require.NoError(t, err)

	rec.Fields["NFT.Title"] = "after"
	_, err = repo.SaveRecord(ctx, rec)
	require.NoError(t, err)

	loaded, err := repo.LoadRecordByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", loaded.Fields["NFT.Title"])
}

func TestLoadRecordByIDNotFound(t *testing.T) {
	t.Parallel()
	repo := New()

	_, err := repo.LoadRecordByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestLoadRecordsByField(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	match := testRecord(entity.RecordKindGeoNFT, uuid.New(), map[string]string{"GEONFT.LatLong": "17:31"})
	other := testRecord(entity.RecordKindGeoNFT, uuid.New(), map[string]string{"GEONFT.LatLong": "18:31"})
	wrongKind := testRecord(entity.RecordKindNFT, uuid.New(), map[string]string{"GEONFT.LatLong": "17:31"})
	for _, rec := range []*entity.Record{match, other, wrongKind} {
		_, err := repo.SaveRecord(ctx, rec)
		require.NoError(t, err)
	}

	found, err := repo.LoadRecordsByField(ctx, entity.RecordKindGeoNFT, "GEONFT.LatLong", "17:31")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, match.ID, found[0].ID)

	none, err := repo.LoadRecordsByField(ctx, entity.RecordKindGeoNFT, "GEONFT.LatLong", "99:99")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLoadRecordsByOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	owner := uuid.New()
	mine := testRecord(entity.RecordKindNFT, owner, nil)
	theirs := testRecord(entity.RecordKindNFT, uuid.New(), nil)
	for _, rec := range []*entity.Record{mine, theirs} {
		_, err := repo.SaveRecord(ctx, rec)
		require.NoError(t, err)
	}

	found, err := repo.LoadRecordsByOwner(ctx, entity.RecordKindNFT, owner)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, mine.ID, found[0].ID)
}

func TestLoadAllRecordsFiltersByKind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	for i := 0; i < 3; i++ {
		_, err := repo.SaveRecord(ctx, testRecord(entity.RecordKindNFT, uuid.New(), nil))
		require.NoError(t, err)
	}
	_, err := repo.SaveRecord(ctx, testRecord(entity.RecordKindGeoNFT, uuid.New(), nil))
	require.NoError(t, err)

	nfts, err := repo.LoadAllRecords(ctx, entity.RecordKindNFT)
	require.NoError(t, err)
	assert.Len(t, nfts, 3)

	geos, err := repo.LoadAllRecords(ctx, entity.RecordKindGeoNFT)
	require.NoError(t, err)
	assert.Len(t, geos, 1)
}

func TestStoredRecordsAreIsolatedFromCallers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	rec := testRecord(entity.RecordKindNFT, uuid.New(), map[string]string{"NFT.Title": "original"})
	_, err := repo.SaveRecord(ctx, rec)
	require.NoError(t, err)

	// Mutating the caller's copy after saving must not leak into the store.
	rec.Fields["NFT.Title"] = "mutated"

	loaded, err := repo.LoadRecordByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", loaded.Fields["NFT.Title"])

	// Neither must mutating a loaded copy.
	loaded.Fields["NFT.Title"] = "mutated again"
	reloaded, err := repo.LoadRecordByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", reloaded.Fields["NFT.Title"])
}
