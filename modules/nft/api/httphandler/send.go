package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"

	"github.com/gaze-network/nft-minter/common"
	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

type sendRequest struct {
	Chain        string      `json:"chain"`
	FromAddress  string      `json:"fromAddress"`
	ToAddress    string      `json:"toAddress"`
	TokenAddress string      `json:"tokenAddress"`
	Amount       int         `json:"amount"`
	MemoText     string      `json:"memoText"`
	Wait         waitRequest `json:"wait"`
}

type sendResult struct {
	TransactionHash string `json:"transactionHash"`
}

type sendResponse = common.HttpResponse[sendResult]

func (h *HttpHandler) Send(ctx *fiber.Ctx) error {
	var request sendRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	hash, err := h.usecase.Send(ctx.UserContext(), &nft.SendRequest{
		Chain:        nft.Chain(request.Chain),
		FromAddress:  request.FromAddress,
		ToAddress:    request.ToAddress,
		TokenAddress: request.TokenAddress,
		Amount:       request.Amount,
		MemoText:     request.MemoText,
		Wait:         request.Wait.toPolicy(),
	})
	if err != nil {
		return errors.Wrap(err, "error during Send")
	}
	resp := sendResponse{
		Result: &sendResult{TransactionHash: hash},
	}
	return errors.WithStack(ctx.JSON(resp))
}
