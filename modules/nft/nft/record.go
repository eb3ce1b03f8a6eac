package nft

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
)

// Record field keys. The serialized-copy keys hold the full JSON of the
// domain object, the rest are flattened scalars for backends that can only
// filter on strings. These names are part of the persisted format, changing
// them orphans existing records.
const (
	RecordKeyNFTObject            = "NFT.OASISNFT"
	RecordKeyNFTID                = "NFT.Id"
	RecordKeyNFTHash              = "NFT.Hash"
	RecordKeyNFTMintedBy          = "NFT.MintedByAvatarId"
	RecordKeyNFTMintWallet        = "NFT.MintWalletAddress"
	RecordKeyNFTTokenAddress      = "NFT.TokenAddress"
	RecordKeyNFTSendToAddress     = "NFT.SendToAddressAfterMinting"
	RecordKeyNFTSendHash          = "NFT.SendTransactionHash"
	RecordKeyNFTTitle             = "NFT.Title"
	RecordKeyNFTDescription       = "NFT.Description"
	RecordKeyNFTPrice             = "NFT.Price"
	RecordKeyNFTDiscount          = "NFT.Discount"
	RecordKeyNFTChain             = "NFT.OnChainProvider"
	RecordKeyNFTAssetStorage      = "NFT.OffChainProvider"
	RecordKeyNFTStandard          = "NFT.Standard"
	RecordKeyNFTSymbol            = "NFT.Symbol"
	RecordKeyNFTImageURL          = "NFT.ImageUrl"
	RecordKeyNFTThumbnailURL      = "NFT.ThumbnailUrl"
	RecordKeyNFTJSONMetadataURL   = "NFT.JSONMetaDataURL"
	RecordKeyNFTMintedOn          = "NFT.MintedOn"
	RecordKeyNFTMemoText          = "NFT.MemoText"

	RecordKeyGeoObject        = "GEONFT.OASISGEONFT"
	RecordKeyGeoID            = "GEONFT.Id"
	RecordKeyGeoOriginalNFTID = "GEONFT.OriginalNFTId"
	RecordKeyGeoLat           = "GEONFT.Lat"
	RecordKeyGeoLong          = "GEONFT.Long"
	RecordKeyGeoLatLong       = "GEONFT.LatLong"
	RecordKeyGeoPlacedBy      = "GEONFT.PlacedByAvatarId"
	RecordKeyGeoPlacedOn      = "GEONFT.PlacedOn"
	RecordKeyGeoPermSpawn     = "GEONFT.PermSpawn"
	RecordKeyGeoGlobalSpawn   = "GEONFT.GlobalSpawnQuantity"
	RecordKeyGeoPlayerSpawn   = "GEONFT.PlayerSpawnQuantity"
	RecordKeyGeoRespawn       = "GEONFT.RespawnDurationInSeconds"
	RecordKeyGeoSpriteURI     = "GEONFT.Nft2DSpriteURI"
	RecordKeyGeoObjectURI     = "GEONFT.Nft3DObjectURI"
)

// LatLongKey renders coordinates as the single "lat:long" string used for
// exact-match spatial lookups.
func LatLongKey(lat, long int64) string {
	return fmt.Sprintf("%d:%d", lat, long)
}

// BuildNFTRecord wraps an NFT into the storage envelope.
func BuildNFTRecord(n *NFT) (*entity.Record, error) {
	obj, err := json.Marshal(n)
	if err != nil {
		return nil, errors.Wrap(err, "can't serialize NFT for record")
	}
	return &entity.Record{
		ID:          n.ID,
		Kind:        entity.RecordKindNFT,
		Name:        fmt.Sprintf("%s NFT", n.Chain),
		Description: n.Description,
		OwnerID:     n.MintedByAvatarID,
		CreatedAt:   n.MintedAt,
		Fields: map[string]string{
			RecordKeyNFTObject:          string(obj),
			RecordKeyNFTID:              n.ID.String(),
			RecordKeyNFTHash:            n.MintTransactionHash,
			RecordKeyNFTMintedBy:        n.MintedByAvatarID.String(),
			RecordKeyNFTMintWallet:      n.MintWalletAddress,
			RecordKeyNFTTokenAddress:    n.TokenAddress,
			RecordKeyNFTSendToAddress:   n.SendToAddress,
			RecordKeyNFTSendHash:        n.SendTransactionHash,
			RecordKeyNFTTitle:           n.Title,
			RecordKeyNFTDescription:     n.Description,
			RecordKeyNFTPrice:           n.Price.String(),
			RecordKeyNFTDiscount:        n.Discount.String(),
			RecordKeyNFTChain:           n.Chain.String(),
			RecordKeyNFTAssetStorage:    n.AssetStorage.String(),
			RecordKeyNFTStandard:        n.Standard.String(),
			RecordKeyNFTSymbol:          n.Symbol,
			RecordKeyNFTImageURL:        n.ImageURL,
			RecordKeyNFTThumbnailURL:    n.ThumbnailURL,
			RecordKeyNFTJSONMetadataURL: n.JSONMetadataURL,
			RecordKeyNFTMintedOn:        n.MintedAt.UTC().Format("2006-01-02T15:04:05Z"),
			RecordKeyNFTMemoText:        n.MemoText,
		},
	}, nil
}

// DecodeNFTRecord restores an NFT from its envelope.
func DecodeNFTRecord(rec *entity.Record) (*NFT, error) {
	raw, ok := rec.Fields[RecordKeyNFTObject]
	if !ok {
		return nil, errors.Errorf("record %s has no %q field, can't decode NFT", rec.ID, RecordKeyNFTObject)
	}
	var n NFT
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return nil, errors.Wrapf(err, "can't decode NFT from record %s", rec.ID)
	}
	return &n, nil
}

// BuildGeoNFTRecord wraps a placement into the storage envelope. The
// flattened fields include the exact-match LatLong key next to the separate
// coordinates.
func BuildGeoNFTRecord(g *GeoSpatialNFT) (*entity.Record, error) {
	obj, err := json.Marshal(g)
	if err != nil {
		return nil, errors.Wrap(err, "can't serialize GeoNFT for record")
	}
	return &entity.Record{
		ID:          g.ID,
		Kind:        entity.RecordKindGeoNFT,
		Name:        fmt.Sprintf("%s GeoNFT", g.Chain),
		Description: g.Description,
		OwnerID:     g.PlacedByAvatarID,
		CreatedAt:   g.PlacedAt,
		Fields: map[string]string{
			RecordKeyGeoObject:        string(obj),
			RecordKeyGeoID:            g.ID.String(),
			RecordKeyGeoOriginalNFTID: g.OriginalNFTID.String(),
			RecordKeyGeoLat:           fmt.Sprintf("%d", g.Lat),
			RecordKeyGeoLong:          fmt.Sprintf("%d", g.Long),
			RecordKeyGeoLatLong:       LatLongKey(g.Lat, g.Long),
			RecordKeyGeoPlacedBy:      g.PlacedByAvatarID.String(),
			RecordKeyGeoPlacedOn:      g.PlacedAt.UTC().Format("2006-01-02T15:04:05Z"),
			RecordKeyGeoPermSpawn:     fmt.Sprintf("%t", g.PermanentSpawn),
			RecordKeyGeoGlobalSpawn:   fmt.Sprintf("%d", g.GlobalSpawnQuantity),
			RecordKeyGeoPlayerSpawn:   fmt.Sprintf("%d", g.PlayerSpawnQuantity),
			RecordKeyGeoRespawn:       fmt.Sprintf("%d", g.RespawnDurationSeconds),
			RecordKeyGeoSpriteURI:     g.Sprite2DURI,
			RecordKeyGeoObjectURI:     g.Object3DURI,
			RecordKeyNFTHash:          g.MintTransactionHash,
			RecordKeyNFTTitle:         g.Title,
			RecordKeyNFTPrice:         g.Price.String(),
			RecordKeyNFTChain:         g.Chain.String(),
			RecordKeyNFTStandard:      g.Standard.String(),
			RecordKeyNFTSymbol:        g.Symbol,
			RecordKeyNFTImageURL:      g.ImageURL,
		},
	}, nil
}

// DecodeGeoNFTRecord restores a placement from its envelope.
func DecodeGeoNFTRecord(rec *entity.Record) (*GeoSpatialNFT, error) {
	raw, ok := rec.Fields[RecordKeyGeoObject]
	if !ok {
		return nil, errors.Errorf("record %s has no %q field, can't decode GeoNFT", rec.ID, RecordKeyGeoObject)
	}
	var g GeoSpatialNFT
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return nil, errors.Wrapf(err, "can't decode GeoNFT from record %s", rec.ID)
	}
	return &g, nil
}
