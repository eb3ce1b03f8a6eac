package nft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMintReportPlain(t *testing.T) {
	t.Parallel()

	res := &MintResult{NFT: testNFT()}
	report := FormatMintReport(res, ReportPlain)

	assert.Contains(t, report, "NFT Minted")
	assert.Contains(t, report, "Title: Mystic Sword")
	assert.Contains(t, report, "Transaction Hash: tx-abc")
	assert.NotContains(t, report, "Warning")
}

func TestFormatMintReportIncludesIdentityAndStorageFields(t *testing.T) {
	t.Parallel()

	n := testNFT()
	n.MetadataStore = "mongo"
	n.ThumbnailURL = "https://cdn.example.com/sword-thumb.png"
	report := FormatMintReport(&MintResult{NFT: n}, ReportPlain)

	assert.Contains(t, report, "ID: "+n.ID.String())
	assert.Contains(t, report, "Asset Storage: pinata")
	assert.Contains(t, report, "Metadata Store: mongo")
	assert.Contains(t, report, "Thumbnail URL: https://cdn.example.com/sword-thumb.png")
}

func TestFormatMintReportMissingFieldsRenderAsNA(t *testing.T) {
	t.Parallel()

	res := &MintResult{NFT: &NFT{}}
	report := FormatMintReport(res, ReportPlain)

	assert.Contains(t, report, "Title: N/A")
	assert.Contains(t, report, "Transaction Hash: N/A")
	assert.Contains(t, report, "Minted By: N/A")
	assert.Contains(t, report, "Minted On: N/A")
}

func TestFormatMintReportWarning(t *testing.T) {
	t.Parallel()

	res := &MintResult{NFT: testNFT(), Warning: "send failed"}
	report := FormatMintReport(res, ReportPlain)
	assert.Contains(t, report, "Warning: send failed")
}

func TestFormatMintReportHTML(t *testing.T) {
	t.Parallel()

	n := testNFT()
	n.Title = "Sword <3"
	report := FormatMintReport(&MintResult{NFT: n}, ReportHTML)

	assert.Contains(t, report, "<h3>NFT Minted</h3>")
	assert.Contains(t, report, "<li><b>Title:</b> Sword &lt;3</li>")
}

func TestFormatMintReportOneLine(t *testing.T) {
	t.Parallel()

	report := FormatMintReport(&MintResult{NFT: testNFT()}, ReportOneLine)

	assert.False(t, strings.Contains(report, "\n"))
	assert.Contains(t, report, "Title=Mystic Sword")
	assert.Contains(t, report, " | ")
}

func TestFormatMintReportNilNFT(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", FormatMintReport(nil, ReportPlain))
	assert.Equal(t, "N/A", FormatMintReport(&MintResult{}, ReportPlain))
}

func TestFormatPlacementReport(t *testing.T) {
	t.Parallel()

	g := &GeoSpatialNFT{NFT: *testNFT(), Lat: 17, Long: 31}
	report := FormatPlacementReport(&PlaceResult{GeoNFT: g}, ReportPlain)

	assert.Contains(t, report, "GeoNFT Placed")
	assert.Contains(t, report, "Location: 17:31")
	assert.Contains(t, report, "Title: Mystic Sword")
}

func TestFormatPlacementReportSpawnAndPresentationFields(t *testing.T) {
	t.Parallel()

	g := &GeoSpatialNFT{
		NFT:                    *testNFT(),
		Lat:                    17,
		Long:                   31,
		PlayerSpawnQuantity:    3,
		RespawnDurationSeconds: 120,
		Sprite2DURI:            "https://cdn.example.com/sword-sprite.png",
		Object3DURI:            "https://cdn.example.com/sword.glb",
	}
	report := FormatPlacementReport(&PlaceResult{GeoNFT: g}, ReportPlain)

	assert.Contains(t, report, "Player Spawn Quantity: 3")
	assert.Contains(t, report, "Respawn Duration Seconds: 120")
	assert.Contains(t, report, "2D Sprite URI: https://cdn.example.com/sword-sprite.png")
	assert.Contains(t, report, "3D Object URI: https://cdn.example.com/sword.glb")
}
