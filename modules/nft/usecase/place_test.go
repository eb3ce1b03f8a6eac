package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

func mintOne(t *testing.T, f *fixture) *nft.NFT {
	t.Helper()
	result, err := f.uc.Mint(context.Background(), validMintRequest(nft.ChainSolana, nft.StandardSPL))
	require.NoError(t, err)
	return result.NFT
}

func TestPlaceDenormalizesOriginal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)

	placedBy := uuid.New()
	result, err := f.uc.Place(ctx, &nft.PlaceRequest{
		OriginalNFTID:          original.ID,
		PlacedByAvatarID:       placedBy,
		Lat:                    17,
		Long:                   31,
		PermanentSpawn:         true,
		GlobalSpawnQuantity:    4,
		RespawnDurationSeconds: 120,
		Sprite2DURI:            "https://assets.test/sword-2d.png",
	})
	require.NoError(t, err)
	geo := result.GeoNFT
	require.NotNil(t, geo)

	// The placement is its own record pointing back at the mint record and
	// carries a full copy of the original's fields.
	assert.NotEqual(t, original.ID, geo.ID)
	assert.Equal(t, original.ID, geo.OriginalNFTID)
	assert.Equal(t, original.Title, geo.Title)
	assert.Equal(t, original.MintTransactionHash, geo.MintTransactionHash)
	assert.Equal(t, original.TokenAddress, geo.TokenAddress)
	assert.Equal(t, original.Chain, geo.Chain)
	assert.Equal(t, original.Symbol, geo.Symbol)

	assert.Equal(t, int64(17), geo.Lat)
	assert.Equal(t, int64(31), geo.Long)
	assert.True(t, geo.PermanentSpawn)
	assert.Equal(t, 4, geo.GlobalSpawnQuantity)
	assert.Equal(t, placedBy, geo.PlacedByAvatarID)
	assert.False(t, geo.PlacedAt.IsZero())
	assert.NotEmpty(t, result.Report)

	// Stored under its own id with the exact-match location key.
	rec, err := f.records.LoadRecordByID(ctx, geo.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RecordKindGeoNFT, rec.Kind)
	assert.Equal(t, "17:31", rec.Fields[nft.RecordKeyGeoLatLong])
}

func TestPlaceOriginalNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)

	_, err := f.uc.Place(context.Background(), &nft.PlaceRequest{
		OriginalNFTID: uuid.New(),
		Lat:           1,
		Long:          2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestPlaceRejectsNegativeCoordinates(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)

	_, err := f.uc.Place(context.Background(), &nft.PlaceRequest{
		OriginalNFTID: uuid.New(),
		Lat:           -1,
		Long:          2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestPlacePersistFailureKeepsGeoNFT(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)
	f.records.failSaves = true

	result, err := f.uc.Place(context.Background(), &nft.PlaceRequest{
		OriginalNFTID: original.ID,
		Lat:           5,
		Long:          6,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.PersistenceFailed)
	require.NotNil(t, result)
	require.NotNil(t, result.GeoNFT)
	assert.Equal(t, original.ID, result.GeoNFT.OriginalNFTID)
	assert.Contains(t, result.Report, "Location: 5:6")
}

func TestPlaceIntoNamedGeoStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)

	geoStore := newFailingRecordStore()
	f.uc.backends.RecordStores["geo"] = geoStore

	result, err := f.uc.Place(ctx, &nft.PlaceRequest{
		OriginalNFTID:    original.ID,
		GeoMetadataStore: "geo",
		Lat:              8,
		Long:             9,
	})
	require.NoError(t, err)
	assert.Equal(t, "geo", result.GeoNFT.GeoMetadataStore)

	rec, err := geoStore.LoadRecordByID(ctx, result.GeoNFT.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RecordKindGeoNFT, rec.Kind)
}

func TestMintAndPlaceUsesMintResultDirectly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)

	req := &nft.MintAndPlaceRequest{
		MintRequest: *validMintRequest(nft.ChainSolana, nft.StandardSPL),
		Lat:         40,
		Long:        41,
	}

	result, err := f.uc.MintAndPlace(ctx, req)
	require.NoError(t, err)
	geo := result.GeoNFT
	require.NotNil(t, geo)

	// The placement came straight from the mint result, not from a reload.
	assert.Zero(t, f.records.loadCalls.Load())
	assert.NotEqual(t, uuid.Nil, geo.OriginalNFTID)
	assert.NotEqual(t, geo.ID, geo.OriginalNFTID)
	assert.Equal(t, int64(40), geo.Lat)

	// Geo defaults applied to the mint half.
	assert.Equal(t, nft.DefaultGeoSymbol, geo.Symbol)

	// Both the mint record and the placement record are stored.
	_, err = f.uc.LoadNFT(ctx, geo.OriginalNFTID, "")
	require.NoError(t, err)
	_, err = f.uc.LoadGeoNFT(ctx, geo.ID, "")
	require.NoError(t, err)
}

func TestMintAndPlacePropagatesMintWarning(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)
	f.chain.failSendAlways = true

	req := &nft.MintAndPlaceRequest{
		MintRequest: *validMintRequest(nft.ChainSolana, nft.StandardSPL),
		Lat:         1,
		Long:        1,
	}

	result, err := f.uc.MintAndPlace(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, result.Warning, "sending it to dest-wallet failed")
}

func TestMintAndPlaceMintFailureStopsPlacement(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)
	f.chain.failMintAlways = true

	req := &nft.MintAndPlaceRequest{
		MintRequest: *validMintRequest(nft.ChainSolana, nft.StandardSPL),
		Lat:         1,
		Long:        1,
	}

	result, err := f.uc.MintAndPlace(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Zero(t, f.records.saveCalls.Load())
}
