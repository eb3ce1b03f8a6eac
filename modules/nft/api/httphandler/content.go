package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/assetstore"
)

// GetContent serves asset bytes hosted by the record-store storage mechanism.
func (h *HttpHandler) GetContent(ctx *fiber.Ctx) error {
	if h.contentRecords == nil {
		return errs.NewPublicError("record-store asset hosting is not configured")
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errs.NewPublicError("invalid content id")
	}
	data, contentType, err := assetstore.LoadContent(ctx.UserContext(), h.contentRecords, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("content not found")
		}
		return errors.Wrap(err, "error during content load")
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	return errors.WithStack(ctx.Send(data))
}
