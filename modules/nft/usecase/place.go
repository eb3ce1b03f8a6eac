package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
	"github.com/gaze-network/nft-minter/pkg/logger"
	"github.com/gaze-network/nft-minter/pkg/logger/slogx"
)

// Place puts an already minted NFT at world coordinates. The placement gets
// its own fresh id and carries a full denormalized copy of the original NFT,
// with OriginalNFTID pointing back at the mint record.
func (u *Usecase) Place(ctx context.Context, req *nft.PlaceRequest) (*nft.PlaceResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	original, err := u.LoadNFT(ctx, req.OriginalNFTID, req.NFTMetadataStore)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load original NFT %s to place", req.OriginalNFTID)
	}
	return u.place(ctx, req, original)
}

// MintAndPlace mints a fresh NFT and immediately places it, reusing the mint
// result directly instead of reloading it from storage.
func (u *Usecase) MintAndPlace(ctx context.Context, req *nft.MintAndPlaceRequest) (*nft.PlaceResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	minted, err := u.mint(ctx, &req.MintRequest, true)
	if err != nil {
		return nil, errors.Wrap(err, "mint half of mint-and-place failed")
	}
	result, err := u.place(ctx, req.PlacementOf(minted.NFT.ID), minted.NFT)
	if err != nil {
		return nil, err
	}
	if result.Warning == "" {
		result.Warning = minted.Warning
	}
	return result, nil
}

func (u *Usecase) place(ctx context.Context, req *nft.PlaceRequest, original *nft.NFT) (*nft.PlaceResult, error) {
	geo := &nft.GeoSpatialNFT{
		NFT:                        *original,
		OriginalNFTID:              original.ID,
		Lat:                        req.Lat,
		Long:                       req.Long,
		PermanentSpawn:             req.PermanentSpawn,
		AllowOtherPlayersToCollect: req.AllowOtherPlayersToCollect,
		GlobalSpawnQuantity:        req.GlobalSpawnQuantity,
		PlayerSpawnQuantity:        req.PlayerSpawnQuantity,
		RespawnDurationSeconds:     req.RespawnDurationSeconds,
		Sprite2D:                   req.Sprite2D,
		Sprite2DURI:                req.Sprite2DURI,
		Object3D:                   req.Object3D,
		Object3DURI:                req.Object3DURI,
		PlacedByAvatarID:           req.PlacedByAvatarID,
		PlacedAt:                   time.Now().UTC(),
	}
	geo.ID = uuid.New()

	result := &nft.PlaceResult{GeoNFT: geo}

	store, storeName, err := u.recordStore(ctx, req.GeoMetadataStore)
	if err != nil {
		result.Report = nft.FormatPlacementReport(result, req.ReportStyle)
		return result, errors.Mark(errors.Wrapf(err, "GeoNFT %s built but its record store is unavailable", geo.ID), errs.PersistenceFailed)
	}
	geo.GeoMetadataStore = storeName

	rec, err := nft.BuildGeoNFTRecord(geo)
	if err != nil {
		result.Report = nft.FormatPlacementReport(result, req.ReportStyle)
		return result, errors.Mark(err, errs.PersistenceFailed)
	}
	if _, err := store.SaveRecord(ctx, rec); err != nil {
		result.Report = nft.FormatPlacementReport(result, req.ReportStyle)
		return result, errors.Mark(errors.Wrapf(err, "GeoNFT %s built but saving its record to %q failed", geo.ID, storeName), errs.PersistenceFailed)
	}

	logger.InfoContext(ctx, "Placed GeoNFT",
		slogx.String("geonft_id", geo.ID.String()),
		slogx.String("original_nft_id", geo.OriginalNFTID.String()),
		slogx.String("location", nft.LatLongKey(geo.Lat, geo.Long)))

	result.Report = nft.FormatPlacementReport(result, req.ReportStyle)
	return result, nil
}
