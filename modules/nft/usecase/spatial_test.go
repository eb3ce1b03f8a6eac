package usecase

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

func placeAt(t *testing.T, f *fixture, original *nft.NFT, lat, long int64) *nft.GeoSpatialNFT {
	t.Helper()
	result, err := f.uc.Place(context.Background(), &nft.PlaceRequest{
		OriginalNFTID: original.ID,
		Lat:           lat,
		Long:          long,
	})
	require.NoError(t, err)
	return result.GeoNFT
}

func TestFindNearBoundingBox(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)

	inside := placeAt(t, f, original, 50, 50)
	onEdge := placeAt(t, f, original, 40, 60)
	outside := placeAt(t, f, original, 75, 50)

	// Radius 10 around (50,50) spans the box [40,60] on both axes.
	found, err := f.uc.FindNear(ctx, 50, 50, 10, "")
	require.NoError(t, err)

	ids := lo.Map(found, func(g *nft.GeoSpatialNFT, _ int) string { return g.ID.String() })
	assert.Contains(t, ids, inside.ID.String())
	assert.Contains(t, ids, onEdge.ID.String())
	assert.NotContains(t, ids, outside.ID.String())
}

func TestFindNearClampedAtZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)

	nearOrigin := placeAt(t, f, original, 1, 2)

	// The box around (3,3) with radius 10 clamps at zero instead of going
	// negative, so a placement near the origin is still inside.
	found, err := f.uc.FindNear(ctx, 3, 3, 10, "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, nearOrigin.ID, found[0].ID)
}

func TestFindNearZeroRadiusIsExactLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(nft.ChainSolana)
	original := mintOne(t, f)

	exact := placeAt(t, f, original, 17, 31)
	placeAt(t, f, original, 18, 31)

	found, err := f.uc.FindNear(ctx, 17, 31, 0, "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, exact.ID, found[0].ID)

	// Zero radius answers through the indexed field, not a full scan.
	assert.EqualValues(t, 1, f.records.fieldCalls.Load())
	assert.Zero(t, f.records.loadAllCalls.Load())
}

func TestFindNearRejectsNegativeInput(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)

	for _, args := range [][3]int64{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}} {
		_, err := f.uc.FindNear(context.Background(), args[0], args[1], args[2], "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	}
}

func TestFindNearEmptyStore(t *testing.T) {
	t.Parallel()
	f := newFixture(nft.ChainSolana)

	found, err := f.uc.FindNear(context.Background(), 10, 10, 5, "")
	require.NoError(t, err)
	assert.Empty(t, found)
}
