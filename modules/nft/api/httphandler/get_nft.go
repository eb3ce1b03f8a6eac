package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/common"
	"github.com/gaze-network/nft-minter/common/errs"
)

type getNFTResponse = common.HttpResponse[nftResult]

func (h *HttpHandler) GetNFT(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errs.NewPublicError("invalid NFT id")
	}
	n, err := h.usecase.LoadNFT(ctx.UserContext(), id, ctx.Query("store"))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("NFT not found")
		}
		return errors.Wrap(err, "error during LoadNFT")
	}
	result := mapNFTToResult(n)
	return errors.WithStack(ctx.JSON(getNFTResponse{Result: &result}))
}

func (h *HttpHandler) GetNFTByHash(ctx *fiber.Ctx) error {
	hash := ctx.Params("hash")
	if hash == "" {
		return errs.NewPublicError("transaction hash is required")
	}
	n, err := h.usecase.LoadNFTByHash(ctx.UserContext(), hash, ctx.Query("store"))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("NFT not found")
		}
		return errors.Wrap(err, "error during LoadNFTByHash")
	}
	result := mapNFTToResult(n)
	return errors.WithStack(ctx.JSON(getNFTResponse{Result: &result}))
}

type getGeoNFTResponse = common.HttpResponse[geoNFTResult]

func (h *HttpHandler) GetGeoNFT(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errs.NewPublicError("invalid GeoNFT id")
	}
	g, err := h.usecase.LoadGeoNFT(ctx.UserContext(), id, ctx.Query("store"))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("GeoNFT not found")
		}
		return errors.Wrap(err, "error during LoadGeoNFT")
	}
	result := mapGeoNFTToResult(g)
	return errors.WithStack(ctx.JSON(getGeoNFTResponse{Result: &result}))
}
