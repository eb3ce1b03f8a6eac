package httphandler

import (
	"time"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
	"github.com/gaze-network/nft-minter/modules/nft/usecase"
)

type HttpHandler struct {
	usecase *usecase.Usecase

	// contentRecords backs the content endpoint for record-store hosted
	// assets, nil when that mechanism is not configured.
	contentRecords datagateway.RecordDataGateway
}

func New(usecase *usecase.Usecase, contentRecords datagateway.RecordDataGateway) *HttpHandler {
	return &HttpHandler{
		usecase:        usecase,
		contentRecords: contentRecords,
	}
}

type nftResult struct {
	ID                   string         `json:"id"`
	Chain                string         `json:"chain"`
	Standard             string         `json:"standard"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Symbol               string         `json:"symbol"`
	Price                string         `json:"price"`
	Discount             string         `json:"discount"`
	ImageURL             string         `json:"imageUrl"`
	ThumbnailURL         string         `json:"thumbnailUrl"`
	JSONMetadataURL      string         `json:"jsonMetadataUrl"`
	Attributes           map[string]any `json:"attributes,omitempty"`
	MemoText             string         `json:"memoText"`
	NumberMinted         int            `json:"numberMinted"`
	MintTransactionHash  string         `json:"mintTransactionHash"`
	MintWalletAddress    string         `json:"mintWalletAddress"`
	TokenAddress         string         `json:"tokenAddress"`
	MetadataStore        string         `json:"metadataStore"`
	MintedByAvatarID     string         `json:"mintedByAvatarId"`
	MintedAt             time.Time      `json:"mintedAt"`
	SendToAddress        string         `json:"sendToAddress,omitempty"`
	SendTransactionHash  string         `json:"sendTransactionHash,omitempty"`
}

type geoNFTResult struct {
	nftResult

	GeoNFTID               string `json:"geoNftId"`
	OriginalNFTID          string `json:"originalNftId"`
	GeoMetadataStore       string `json:"geoMetadataStore"`
	Lat                    int64  `json:"lat"`
	Long                   int64  `json:"long"`
	PermanentSpawn         bool   `json:"permanentSpawn"`
	GlobalSpawnQuantity    int    `json:"globalSpawnQuantity"`
	PlayerSpawnQuantity    int    `json:"playerSpawnQuantity"`
	RespawnDurationSeconds int    `json:"respawnDurationSeconds"`
	Sprite2DURI            string `json:"sprite2dUri,omitempty"`
	Object3DURI            string `json:"object3dUri,omitempty"`
	PlacedByAvatarID       string `json:"placedByAvatarId"`
	PlacedAt               time.Time `json:"placedAt"`
}

func mapNFTToResult(n *nft.NFT) nftResult {
	return nftResult{
		ID:                  n.ID.String(),
		Chain:               n.Chain.String(),
		Standard:            n.Standard.String(),
		Title:               n.Title,
		Description:         n.Description,
		Symbol:              n.Symbol,
		Price:               n.Price.String(),
		Discount:            n.Discount.String(),
		ImageURL:            n.ImageURL,
		ThumbnailURL:        n.ThumbnailURL,
		JSONMetadataURL:     n.JSONMetadataURL,
		Attributes:          n.Attributes,
		MemoText:            n.MemoText,
		NumberMinted:        n.NumberMinted,
		MintTransactionHash: n.MintTransactionHash,
		MintWalletAddress:   n.MintWalletAddress,
		TokenAddress:        n.TokenAddress,
		MetadataStore:       n.MetadataStore,
		MintedByAvatarID:    n.MintedByAvatarID.String(),
		MintedAt:            n.MintedAt,
		SendToAddress:       n.SendToAddress,
		SendTransactionHash: n.SendTransactionHash,
	}
}

func mapGeoNFTToResult(g *nft.GeoSpatialNFT) geoNFTResult {
	return geoNFTResult{
		nftResult:              mapNFTToResult(&g.NFT),
		GeoNFTID:               g.ID.String(),
		OriginalNFTID:          g.OriginalNFTID.String(),
		GeoMetadataStore:       g.GeoMetadataStore,
		Lat:                    g.Lat,
		Long:                   g.Long,
		PermanentSpawn:         g.PermanentSpawn,
		GlobalSpawnQuantity:    g.GlobalSpawnQuantity,
		PlayerSpawnQuantity:    g.PlayerSpawnQuantity,
		RespawnDurationSeconds: g.RespawnDurationSeconds,
		Sprite2DURI:            g.Sprite2DURI,
		Object3DURI:            g.Object3DURI,
		PlacedByAvatarID:       g.PlacedByAvatarID.String(),
		PlacedAt:               g.PlacedAt,
	}
}
