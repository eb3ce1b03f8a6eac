package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/gaze-network/nft-minter/common"
	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

type listNFTsResult struct {
	NFTs []nftResult `json:"nfts"`
}

type listNFTsResponse = common.HttpResponse[listNFTsResult]

func (h *HttpHandler) ListNFTs(ctx *fiber.Ctx) error {
	store := ctx.Query("store")
	var (
		nfts []*nft.NFT
		err  error
	)
	if avatarParam := ctx.Query("avatarId"); avatarParam != "" {
		avatarID, parseErr := uuid.Parse(avatarParam)
		if parseErr != nil {
			return errs.NewPublicError("invalid avatarId")
		}
		nfts, err = h.usecase.LoadNFTsForAvatar(ctx.UserContext(), avatarID, store)
	} else {
		nfts, err = h.usecase.LoadAllNFTs(ctx.UserContext(), store)
	}
	if err != nil {
		return errors.Wrap(err, "error during NFT list")
	}
	resp := listNFTsResponse{
		Result: &listNFTsResult{
			NFTs: lo.Map(nfts, func(n *nft.NFT, _ int) nftResult { return mapNFTToResult(n) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type listGeoNFTsResult struct {
	GeoNFTs []geoNFTResult `json:"geoNfts"`
}

type listGeoNFTsResponse = common.HttpResponse[listGeoNFTsResult]

func (h *HttpHandler) ListGeoNFTs(ctx *fiber.Ctx) error {
	store := ctx.Query("store")
	var (
		geoNFTs []*nft.GeoSpatialNFT
		err     error
	)
	if avatarParam := ctx.Query("avatarId"); avatarParam != "" {
		avatarID, parseErr := uuid.Parse(avatarParam)
		if parseErr != nil {
			return errs.NewPublicError("invalid avatarId")
		}
		geoNFTs, err = h.usecase.LoadGeoNFTsForAvatar(ctx.UserContext(), avatarID, store)
	} else {
		geoNFTs, err = h.usecase.LoadAllGeoNFTs(ctx.UserContext(), store)
	}
	if err != nil {
		return errors.Wrap(err, "error during GeoNFT list")
	}
	resp := listGeoNFTsResponse{
		Result: &listGeoNFTsResult{
			GeoNFTs: lo.Map(geoNFTs, func(g *nft.GeoSpatialNFT, _ int) geoNFTResult { return mapGeoNFTToResult(g) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
