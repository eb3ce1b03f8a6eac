package nft

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

func testNFT() *NFT {
	return &NFT{
		ID:                  uuid.New(),
		MintTransactionHash: "tx-abc",
		MintWalletAddress:   "wallet-1",
		TokenAddress:        "token-1",
		Chain:               ChainSolana,
		Standard:            StandardSPL,
		AssetStorage:        StoragePinata,
		Symbol:              "OASISNFT",
		Title:               "Mystic Sword",
		Description:         "A sword",
		Price:               decimal.RequireFromString("12.5"),
		Discount:            decimal.RequireFromString("2"),
		ImageURL:            "https://cdn.example.com/sword.png",
		JSONMetadataURL:     "https://cdn.example.com/sword.json",
		MemoText:            "memo",
		MintedByAvatarID:    uuid.New(),
		MintedAt:            time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SendToAddress:       "dest-1",
		SendTransactionHash: "send-tx",
	}
}

func TestNFTRecordRoundTrip(t *testing.T) {
	t.Parallel()

	n := testNFT()
	rec, err := BuildNFTRecord(n)
	require.NoError(t, err)

	assert.Equal(t, n.ID, rec.ID)
	assert.Equal(t, entity.RecordKindNFT, rec.Kind)
	assert.Equal(t, n.MintedByAvatarID, rec.OwnerID)
	assert.Equal(t, "tx-abc", rec.Fields[RecordKeyNFTHash])
	assert.Equal(t, "12.5", rec.Fields[RecordKeyNFTPrice])
	assert.Equal(t, "solana", rec.Fields[RecordKeyNFTChain])
	assert.Equal(t, "2025-06-01T12:00:00Z", rec.Fields[RecordKeyNFTMintedOn])

	decoded, err := DecodeNFTRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, n.ID, decoded.ID)
	assert.Equal(t, n.Title, decoded.Title)
	assert.Equal(t, n.SendTransactionHash, decoded.SendTransactionHash)
	assert.True(t, n.Price.Equal(decoded.Price))
	assert.True(t, n.MintedAt.Equal(decoded.MintedAt))
}

func TestDecodeNFTRecordMissingObjectKey(t *testing.T) {
	t.Parallel()

	rec := &entity.Record{
		ID:     uuid.New(),
		Kind:   entity.RecordKindNFT,
		Fields: map[string]string{RecordKeyNFTTitle: "orphan"},
	}
	_, err := DecodeNFTRecord(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), RecordKeyNFTObject)
}

func TestGeoNFTRecordRoundTrip(t *testing.T) {
	t.Parallel()

	g := &GeoSpatialNFT{
		NFT:                    *testNFT(),
		OriginalNFTID:          uuid.New(),
		Lat:                    17,
		Long:                   31,
		PermanentSpawn:         true,
		GlobalSpawnQuantity:    5,
		PlayerSpawnQuantity:    1,
		RespawnDurationSeconds: 60,
		Sprite2DURI:            "https://cdn.example.com/sprite.png",
		PlacedByAvatarID:       uuid.New(),
		PlacedAt:               time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
	}
	g.ID = uuid.New()

	rec, err := BuildGeoNFTRecord(g)
	require.NoError(t, err)

	assert.Equal(t, g.ID, rec.ID)
	assert.Equal(t, entity.RecordKindGeoNFT, rec.Kind)
	assert.Equal(t, g.PlacedByAvatarID, rec.OwnerID)
	assert.Equal(t, "17:31", rec.Fields[RecordKeyGeoLatLong])
	assert.Equal(t, g.OriginalNFTID.String(), rec.Fields[RecordKeyGeoOriginalNFTID])
	assert.Equal(t, "true", rec.Fields[RecordKeyGeoPermSpawn])
	// flattened copy of the original NFT scalars rides along
	assert.Equal(t, "tx-abc", rec.Fields[RecordKeyNFTHash])
	assert.Equal(t, "Mystic Sword", rec.Fields[RecordKeyNFTTitle])

	decoded, err := DecodeGeoNFTRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, g.ID, decoded.ID)
	assert.Equal(t, g.OriginalNFTID, decoded.OriginalNFTID)
	assert.Equal(t, g.Lat, decoded.Lat)
	assert.Equal(t, g.Long, decoded.Long)
	assert.Equal(t, g.Title, decoded.Title)
}

func TestDecodeGeoNFTRecordMissingObjectKey(t *testing.T) {
	t.Parallel()

	rec := &entity.Record{
		ID:     uuid.New(),
		Kind:   entity.RecordKindGeoNFT,
		Fields: map[string]string{},
	}
	_, err := DecodeGeoNFTRecord(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), RecordKeyGeoObject)
}

func TestLatLongKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0:0", LatLongKey(0, 0))
	assert.Equal(t, "100:42", LatLongKey(100, 42))
}
