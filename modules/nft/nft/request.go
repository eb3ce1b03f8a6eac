package nft

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/pkg/poll"
)

// MintRequest describes a mint to orchestrate. Chain selects the on-chain
// backend, AssetStorage the off-chain upload mechanism and MetadataStore the
// named record store for the canonical record (empty means the default store).
type MintRequest struct {
	Chain         Chain            `json:"chain"`
	Standard      Standard         `json:"standard"`
	AssetStorage  StorageMechanism `json:"assetStorage"`
	MetadataStore string           `json:"metadataStore"`

	Title       string          `json:"title"`
	Description string          `json:"description"`
	Symbol      string          `json:"symbol"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`

	Image        []byte `json:"image"`
	ImageURL     string `json:"imageUrl"`
	Thumbnail    []byte `json:"thumbnail"`
	ThumbnailURL string `json:"thumbnailUrl"`

	// JSONMetadata, when set, is used verbatim instead of a generated
	// document. JSONMetadataURL must be set when AssetStorage is
	// StorageExternalURL.
	JSONMetadata    string `json:"jsonMetadata"`
	JSONMetadataURL string `json:"jsonMetadataUrl"`

	Attributes map[string]any `json:"attributes"`
	MemoText   string         `json:"memoText"`

	NumberToMint int `json:"numberToMint"`

	MintedByAvatarID uuid.UUID `json:"mintedByAvatarId"`

	// Post-mint destination, one of which must be set. A raw address wins
	// over avatar identifiers; identifiers are resolved to a wallet address
	// on the target chain before minting starts.
	SendToAddress        string    `json:"sendToAddress"`
	SendToAvatarID       uuid.UUID `json:"sendToAvatarId"`
	SendToAvatarUsername string    `json:"sendToAvatarUsername"`
	SendToAvatarEmail    string    `json:"sendToAvatarEmail"`

	MintWait poll.Policy `json:"mintWait"`
	SendWait poll.Policy `json:"sendWait"`

	ReportStyle ReportStyle `json:"reportStyle"`
}

// Validate rejects requests that can never succeed before any side effect
// happens.
func (r *MintRequest) Validate() error {
	if r.Title == "" {
		return errors.Mark(errors.New("title is required"), errs.InvalidArgument)
	}
	if err := ValidateStandard(r.Standard, r.Chain); err != nil {
		return err
	}
	if r.SendToAddress == "" && r.SendToAvatarID == uuid.Nil && r.SendToAvatarUsername == "" && r.SendToAvatarEmail == "" {
		return errors.Mark(errors.New("no destination given, set a send-to address or an avatar id, username or email"), errs.InvalidArgument)
	}
	if r.AssetStorage == StorageExternalURL && r.JSONMetadataURL == "" {
		return errors.Mark(errors.New("jsonMetadataUrl is required when asset storage is external-url"), errs.InvalidArgument)
	}
	if r.Price.IsNegative() || r.Discount.IsNegative() {
		return errors.Mark(errors.New("price and discount must not be negative"), errs.InvalidArgument)
	}
	return nil
}

// PlaceRequest places an already minted NFT at world coordinates.
type PlaceRequest struct {
	OriginalNFTID uuid.UUID `json:"originalNftId"`

	// NFTMetadataStore is where the original NFT record lives,
	// GeoMetadataStore is where the placement record goes.
	NFTMetadataStore string `json:"nftMetadataStore"`
	GeoMetadataStore string `json:"geoMetadataStore"`

	PlacedByAvatarID uuid.UUID `json:"placedByAvatarId"`

	Lat  int64 `json:"lat"`
	Long int64 `json:"long"`

	PermanentSpawn             bool `json:"permanentSpawn"`
	AllowOtherPlayersToCollect bool `json:"allowOtherPlayersToCollect"`
	GlobalSpawnQuantity        int  `json:"globalSpawnQuantity"`
	PlayerSpawnQuantity        int  `json:"playerSpawnQuantity"`
	RespawnDurationSeconds     int  `json:"respawnDurationSeconds"`

	Sprite2D    []byte `json:"sprite2d"`
	Sprite2DURI string `json:"sprite2dUri"`
	Object3D    []byte `json:"object3d"`
	Object3DURI string `json:"object3dUri"`

	ReportStyle ReportStyle `json:"reportStyle"`
}

func (r *PlaceRequest) Validate() error {
	if r.OriginalNFTID == uuid.Nil {
		return errors.Mark(errors.New("originalNftId is required"), errs.InvalidArgument)
	}
	if r.Lat < 0 || r.Long < 0 {
		return errors.Mark(errors.New("lat and long must not be negative"), errs.InvalidArgument)
	}
	return nil
}

// MintAndPlaceRequest mints a fresh NFT and immediately places it. The
// placement fields mirror PlaceRequest minus the original id, which is taken
// from the mint result.
type MintAndPlaceRequest struct {
	MintRequest

	GeoMetadataStore string `json:"geoMetadataStore"`

	Lat  int64 `json:"lat"`
	Long int64 `json:"long"`

	PermanentSpawn             bool `json:"permanentSpawn"`
	AllowOtherPlayersToCollect bool `json:"allowOtherPlayersToCollect"`
	GlobalSpawnQuantity        int  `json:"globalSpawnQuantity"`
	PlayerSpawnQuantity        int  `json:"playerSpawnQuantity"`
	RespawnDurationSeconds     int  `json:"respawnDurationSeconds"`

	Sprite2D    []byte `json:"sprite2d"`
	Sprite2DURI string `json:"sprite2dUri"`
	Object3D    []byte `json:"object3d"`
	Object3DURI string `json:"object3dUri"`
}

func (r *MintAndPlaceRequest) Validate() error {
	if err := r.MintRequest.Validate(); err != nil {
		return err
	}
	if r.Lat < 0 || r.Long < 0 {
		return errors.Mark(errors.New("lat and long must not be negative"), errs.InvalidArgument)
	}
	return nil
}

// PlacementOf derives the placement half of the request for the freshly
// minted NFT.
func (r *MintAndPlaceRequest) PlacementOf(originalID uuid.UUID) *PlaceRequest {
	return &PlaceRequest{
		OriginalNFTID:              originalID,
		NFTMetadataStore:           r.MetadataStore,
		GeoMetadataStore:           r.GeoMetadataStore,
		PlacedByAvatarID:           r.MintedByAvatarID,
		Lat:                        r.Lat,
		Long:                       r.Long,
		PermanentSpawn:             r.PermanentSpawn,
		AllowOtherPlayersToCollect: r.AllowOtherPlayersToCollect,
		GlobalSpawnQuantity:        r.GlobalSpawnQuantity,
		PlayerSpawnQuantity:        r.PlayerSpawnQuantity,
		RespawnDurationSeconds:     r.RespawnDurationSeconds,
		Sprite2D:                   r.Sprite2D,
		Sprite2DURI:                r.Sprite2DURI,
		Object3D:                   r.Object3D,
		Object3DURI:                r.Object3DURI,
		ReportStyle:                r.ReportStyle,
	}
}

// SendRequest transfers an already minted token to a new owner.
type SendRequest struct {
	Chain        Chain  `json:"chain"`
	FromAddress  string `json:"fromAddress"`
	ToAddress    string `json:"toAddress"`
	TokenAddress string `json:"tokenAddress"`
	Amount       int    `json:"amount"`
	MemoText     string `json:"memoText"`

	Wait poll.Policy `json:"wait"`
}

func (r *SendRequest) Validate() error {
	if r.ToAddress == "" {
		return errors.Mark(errors.New("toAddress is required"), errs.InvalidArgument)
	}
	if r.TokenAddress == "" {
		return errors.Mark(errors.New("tokenAddress is required"), errs.InvalidArgument)
	}
	return nil
}
