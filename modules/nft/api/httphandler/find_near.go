package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/gaze-network/nft-minter/common"
	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

type findNearRequest struct {
	Lat    int64  `query:"lat"`
	Long   int64  `query:"long"`
	Radius int64  `query:"radius"`
	Store  string `query:"store"`
}

type findNearResult struct {
	GeoNFTs []geoNFTResult `json:"geoNfts"`
}

type findNearResponse = common.HttpResponse[findNearResult]

func (h *HttpHandler) FindNear(ctx *fiber.Ctx) error {
	var request findNearRequest
	if err := ctx.QueryParser(&request); err != nil {
		return errs.NewPublicError("invalid query parameters")
	}
	if request.Lat < 0 || request.Long < 0 || request.Radius < 0 {
		return errs.NewPublicError("lat, long and radius must not be negative")
	}
	geoNFTs, err := h.usecase.FindNear(ctx.UserContext(), request.Lat, request.Long, request.Radius, request.Store)
	if err != nil {
		return errors.Wrap(err, "error during FindNear")
	}
	resp := findNearResponse{
		Result: &findNearResult{
			GeoNFTs: lo.Map(geoNFTs, func(g *nft.GeoSpatialNFT, _ int) geoNFTResult { return mapGeoNFTToResult(g) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
