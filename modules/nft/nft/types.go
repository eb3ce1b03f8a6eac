package nft

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NFT is the canonical record of a completed mint. It carries both the
// on-chain receipt and the off-chain asset locations.
type NFT struct {
	ID                  uuid.UUID
	MintTransactionHash string
	MintWalletAddress   string
	TokenAddress        string

	Chain        Chain
	Standard     Standard
	AssetStorage StorageMechanism

	// MetadataStore names the record store the canonical record was saved to.
	MetadataStore string

	Symbol      string
	Title       string
	Description string
	Price       decimal.Decimal
	Discount    decimal.Decimal

	SellerFeeBasisPoints int

	Image        []byte
	ImageURL     string
	Thumbnail    []byte
	ThumbnailURL string

	JSONMetadata    string
	JSONMetadataURL string

	Attributes map[string]any
	MemoText   string

	NumberMinted int

	MintedByAvatarID uuid.UUID
	MintedAt         time.Time

	SendToAddress        string
	SendToAvatarID       uuid.UUID
	SendToAvatarUsername string

	// SendTransactionHash holds the transfer hash of the post-mint send, or a
	// human readable failure note when the send did not go through.
	SendTransactionHash string
}

// GeoSpatialNFT is a placement of an NFT at world coordinates. It embeds a
// denormalized copy of the original NFT so spatial reads never need a second
// lookup; ID is the placement's own fresh id and OriginalNFTID points back at
// the mint record the copy was taken from.
type GeoSpatialNFT struct {
	NFT

	OriginalNFTID uuid.UUID

	// GeoMetadataStore names the record store the placement record was saved
	// to, which may differ from the store holding the original NFT.
	GeoMetadataStore string

	Lat  int64
	Long int64

	PermanentSpawn             bool
	AllowOtherPlayersToCollect bool
	GlobalSpawnQuantity        int
	PlayerSpawnQuantity        int
	RespawnDurationSeconds     int

	Sprite2D    []byte
	Sprite2DURI string
	Object3D    []byte
	Object3DURI string

	PlacedByAvatarID uuid.UUID
	PlacedAt         time.Time
}
