package nft

import (
	"fmt"
	"html"
	"strings"
)

// ReportStyle selects how a mint or placement summary is rendered.
type ReportStyle string

const (
	ReportPlain   ReportStyle = "plain"
	ReportHTML    ReportStyle = "html"
	ReportOneLine ReportStyle = "one-line"
)

const reportPlaceholder = "N/A"

// FormatMintReport renders a human readable summary of a mint. It never
// fails, missing fields render as N/A.
func FormatMintReport(res *MintResult, style ReportStyle) string {
	if res == nil || res.NFT == nil {
		return reportPlaceholder
	}
	n := res.NFT
	lines := []reportLine{
		{"ID", orNA(uuidOrNA(n.ID.String()))},
		{"Title", orNA(n.Title)},
		{"Chain", orNA(n.Chain.String())},
		{"Standard", orNA(n.Standard.String())},
		{"Asset Storage", orNA(n.AssetStorage.String())},
		{"Metadata Store", orNA(n.MetadataStore)},
		{"Transaction Hash", orNA(n.MintTransactionHash)},
		{"Token Address", orNA(n.TokenAddress)},
		{"Mint Wallet", orNA(n.MintWalletAddress)},
		{"Sent To", orNA(n.SendToAddress)},
		{"Send Transaction Hash", orNA(n.SendTransactionHash)},
		{"Image URL", orNA(n.ImageURL)},
		{"Thumbnail URL", orNA(n.ThumbnailURL)},
		{"Metadata URL", orNA(n.JSONMetadataURL)},
		{"Price", n.Price.String()},
		{"Minted By", orNA(uuidOrNA(n.MintedByAvatarID.String()))},
		{"Minted On", orNA(timeOrNA(n.MintedAt.IsZero(), n.MintedAt.UTC().Format("2006-01-02 15:04:05")))},
	}
	if res.Warning != "" {
		lines = append(lines, reportLine{"Warning", res.Warning})
	}
	return renderReport("NFT Minted", lines, style)
}

// FormatPlacementReport renders a human readable summary of a placement.
func FormatPlacementReport(res *PlaceResult, style ReportStyle) string {
	if res == nil || res.GeoNFT == nil {
		return reportPlaceholder
	}
	g := res.GeoNFT
	lines := []reportLine{
		{"Title", orNA(g.Title)},
		{"Original NFT", orNA(uuidOrNA(g.OriginalNFTID.String()))},
		{"Location", LatLongKey(g.Lat, g.Long)},
		{"Chain", orNA(g.Chain.String())},
		{"Transaction Hash", orNA(g.MintTransactionHash)},
		{"Permanent Spawn", fmt.Sprintf("%t", g.PermanentSpawn)},
		{"Global Spawn Quantity", fmt.Sprintf("%d", g.GlobalSpawnQuantity)},
		{"Player Spawn Quantity", fmt.Sprintf("%d", g.PlayerSpawnQuantity)},
		{"Respawn Duration Seconds", fmt.Sprintf("%d", g.RespawnDurationSeconds)},
		{"2D Sprite URI", orNA(g.Sprite2DURI)},
		{"3D Object URI", orNA(g.Object3DURI)},
		{"Placed By", orNA(uuidOrNA(g.PlacedByAvatarID.String()))},
		{"Placed On", orNA(timeOrNA(g.PlacedAt.IsZero(), g.PlacedAt.UTC().Format("2006-01-02 15:04:05")))},
	}
	if res.Warning != "" {
		lines = append(lines, reportLine{"Warning", res.Warning})
	}
	return renderReport("GeoNFT Placed", lines, style)
}

type reportLine struct {
	label string
	value string
}

func renderReport(heading string, lines []reportLine, style ReportStyle) string {
	var sb strings.Builder
	switch style {
	case ReportHTML:
		sb.WriteString("<h3>")
		sb.WriteString(html.EscapeString(heading))
		sb.WriteString("</h3>\n<ul>\n")
		for _, l := range lines {
			sb.WriteString("<li><b>")
			sb.WriteString(html.EscapeString(l.label))
			sb.WriteString(":</b> ")
			sb.WriteString(html.EscapeString(l.value))
			sb.WriteString("</li>\n")
		}
		sb.WriteString("</ul>")
	case ReportOneLine:
		parts := make([]string, 0, len(lines)+1)
		parts = append(parts, heading)
		for _, l := range lines {
			parts = append(parts, fmt.Sprintf("%s=%s", l.label, l.value))
		}
		sb.WriteString(strings.Join(parts, " | "))
	default:
		sb.WriteString(heading)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", len(heading)))
		sb.WriteString("\n")
		for _, l := range lines {
			sb.WriteString(fmt.Sprintf("%s: %s\n", l.label, l.value))
		}
	}
	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return reportPlaceholder
	}
	return s
}

func uuidOrNA(s string) string {
	if s == "00000000-0000-0000-0000-000000000000" {
		return ""
	}
	return s
}

func timeOrNA(zero bool, formatted string) string {
	if zero {
		return ""
	}
	return formatted
}
