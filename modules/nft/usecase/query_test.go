package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

func TestLoadNFT(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	minted := mintOne(t, f)

	loaded, err := f.uc.LoadNFT(ctx, minted.ID, "")
	require.NoError(t, err)
	assert.Equal(t, minted.ID, loaded.ID)
	assert.Equal(t, minted.Title, loaded.Title)
	assert.Equal(t, minted.MintTransactionHash, loaded.MintTransactionHash)

	_, err = f.uc.LoadNFT(ctx, uuid.New(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestLoadNFTByHash(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	minted := mintOne(t, f)

	loaded, err := f.uc.LoadNFTByHash(ctx, minted.MintTransactionHash, "")
	require.NoError(t, err)
	assert.Equal(t, minted.ID, loaded.ID)

	_, err = f.uc.LoadNFTByHash(ctx, "no-such-hash", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestLoadAllNFTs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	first := mintOne(t, f)
	second := mintOne(t, f)

	all, err := f.uc.LoadAllNFTs(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	ids := []uuid.UUID{all[0].ID, all[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestLoadNFTsForAvatar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)

	minter := uuid.New()
	req := validMintRequest(nft.ChainSolana, nft.StandardSPL)
	req.MintedByAvatarID = minter
	_, err := f.uc.Mint(ctx, req)
	require.NoError(t, err)
	mintOne(t, f)

	mine, err := f.uc.LoadNFTsForAvatar(ctx, minter, "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, minter, mine[0].MintedByAvatarID)

	none, err := f.uc.LoadNFTsForAvatar(ctx, uuid.New(), "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLoadGeoNFT(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)
	placed := placeAt(t, f, original, 7, 8)

	loaded, err := f.uc.LoadGeoNFT(ctx, placed.ID, "")
	require.NoError(t, err)
	assert.Equal(t, placed.ID, loaded.ID)
	assert.Equal(t, original.ID, loaded.OriginalNFTID)
	assert.Equal(t, int64(7), loaded.Lat)

	_, err = f.uc.LoadGeoNFT(ctx, uuid.New(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestLoadGeoNFTsForAvatar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)

	placer := uuid.New()
	result, err := f.uc.Place(ctx, &nft.PlaceRequest{
		OriginalNFTID:    original.ID,
		PlacedByAvatarID: placer,
		Lat:              1,
		Long:             1,
	})
	require.NoError(t, err)
	placeAt(t, f, original, 2, 2)

	mine, err := f.uc.LoadGeoNFTsForAvatar(ctx, placer, "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, result.GeoNFT.ID, mine[0].ID)
}

func TestLoadFromUnknownStore(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)

	_, err := f.uc.LoadAllNFTs(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.Unsupported)
}
