package usecase

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
	"github.com/gaze-network/nft-minter/pkg/poll"
)

// Send transfers an already minted token under the request's wait policy.
// Unlike the post-mint send inside Mint, a failure here is a hard error.
func (u *Usecase) Send(ctx context.Context, req *nft.SendRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	chain, err := u.chainProvider(ctx, req.Chain)
	if err != nil {
		return "", err
	}
	amount := req.Amount
	if amount < 1 {
		amount = 1
	}
	hash, err := poll.Do(ctx, func(ctx context.Context) (string, error) {
		return chain.SendNFT(ctx, datagateway.SendParams{
			FromAddress:  req.FromAddress,
			ToAddress:    req.ToAddress,
			TokenAddress: req.TokenAddress,
			Amount:       amount,
			Memo:         req.MemoText,
		})
	}, req.Wait)
	if err != nil {
		return "", errors.Wrapf(err, "send on chain %q failed", req.Chain)
	}
	return hash, nil
}
