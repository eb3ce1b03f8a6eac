package nft

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMintRequest(standard Standard, chain Chain) *MintRequest {
	return &MintRequest{
		Chain:            chain,
		Standard:         standard,
		Title:            "Mystic Sword",
		Description:      "A sword",
		Symbol:           "SWORD",
		Price:            decimal.RequireFromString("12.5"),
		Discount:         decimal.RequireFromString("2"),
		ImageURL:         "https://cdn.example.com/sword.png",
		MemoText:         "minted for testing",
		MintedByAvatarID: uuid.New(),
	}
}

func TestBuildMetadataDocumentMetaplex(t *testing.T) {
	t.Parallel()

	req := baseMintRequest(StandardSPL, ChainSolana)
	req.Attributes = map[string]any{"rarity": "legendary", "damage": 42}

	doc, err := BuildMetadataDocument(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &out))

	assert.Equal(t, "Mystic Sword", out["name"])
	assert.Equal(t, "SWORD", out["symbol"])
	assert.Equal(t, "A sword", out["description"])
	assert.EqualValues(t, 500, out["seller_fee_basis_points"])
	assert.Equal(t, "https://cdn.example.com/sword.png", out["image"])
	assert.Equal(t, "12.5", out["price"])
	assert.Equal(t, "2", out["discount"])
	assert.Equal(t, "minted for testing", out["memo"])

	attrs, ok := out["attributes"].([]any)
	require.True(t, ok)
	require.Len(t, attrs, 2)
	first, ok := attrs[0].(map[string]any)
	require.True(t, ok)
	// attributes are sorted by trait name for stable output
	assert.Equal(t, "damage", first["trait_type"])
}

func TestBuildMetadataDocumentERC721(t *testing.T) {
	t.Parallel()

	req := baseMintRequest(StandardERC721, ChainEthereum)
	doc, err := BuildMetadataDocument(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &out))

	assert.Equal(t, "Mystic Sword", out["title"])
	assert.NotContains(t, out, "name")
	assert.NotContains(t, out, "symbol")
	assert.NotContains(t, out, "seller_fee_basis_points")
	assert.NotContains(t, out, "copies")
	assert.Equal(t, "12.5", out["price"])
}

func TestBuildMetadataDocumentERC1155Copies(t *testing.T) {
	t.Parallel()

	req := baseMintRequest(StandardERC1155, ChainPolygon)
	req.NumberToMint = 10

	doc, err := BuildMetadataDocument(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &out))
	assert.EqualValues(t, 10, out["copies"])
}

func TestBuildMetadataDocumentUnknownStandard(t *testing.T) {
	t.Parallel()

	req := baseMintRequest(Standard("brc20"), ChainEthereum)
	_, err := BuildMetadataDocument(req)
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("nft defaults", func(t *testing.T) {
		t.Parallel()
		req := baseMintRequest(StandardSPL, ChainSolana)
		req.Symbol = ""
		req.MemoText = ""
		req.NumberToMint = 0

		req.ApplyDefaults(false)

		assert.Equal(t, DefaultSymbol, req.Symbol)
		assert.Equal(t, 1, req.NumberToMint)
		assert.Equal(t, ReportPlain, req.ReportStyle)
		assert.Contains(t, req.MemoText, "solana NFT minted on The OASIS with title 'Mystic Sword'")
		assert.Contains(t, req.MemoText, req.MintedByAvatarID.String())
		assert.Contains(t, req.MemoText, "for the price of 12.5")
	})

	t.Run("geo defaults", func(t *testing.T) {
		t.Parallel()
		req := baseMintRequest(StandardERC721, ChainPolygon)
		req.Symbol = ""
		req.MemoText = ""

		req.ApplyDefaults(true)

		assert.Equal(t, DefaultGeoSymbol, req.Symbol)
		assert.Contains(t, req.MemoText, "polygon GeoNFT minted on The OASIS")
	})

	t.Run("caller values kept", func(t *testing.T) {
		t.Parallel()
		req := baseMintRequest(StandardSPL, ChainSolana)
		req.ApplyDefaults(false)
		assert.Equal(t, "SWORD", req.Symbol)
		assert.Equal(t, "minted for testing", req.MemoText)
	})
}
