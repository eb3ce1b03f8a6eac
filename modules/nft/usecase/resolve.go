package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

// resolveDestination turns whatever destination the request carries into a
// concrete wallet address on the target chain. An explicit address wins over
// avatar identifiers.
func (u *Usecase) resolveDestination(ctx context.Context, req *nft.MintRequest) error {
	if req.SendToAddress != "" {
		return nil
	}
	if u.backends.Avatars == nil {
		return errors.Mark(errors.New("no avatar resolver configured, give an explicit sendToAddress"), errs.Unsupported)
	}

	var (
		avatar *datagateway.Avatar
		err    error
	)
	switch {
	case req.SendToAvatarID != uuid.Nil:
		avatar, err = u.backends.Avatars.ResolveByID(ctx, req.SendToAvatarID)
	case req.SendToAvatarUsername != "":
		avatar, err = u.backends.Avatars.ResolveByUsername(ctx, req.SendToAvatarUsername)
	case req.SendToAvatarEmail != "":
		avatar, err = u.backends.Avatars.ResolveByEmail(ctx, req.SendToAvatarEmail)
	default:
		return errors.Mark(errors.New("no destination given"), errs.InvalidArgument)
	}
	if err != nil {
		return errors.Wrap(err, "can't resolve destination avatar")
	}

	wallet, ok := preferredWallet(avatar, req.Chain)
	if !ok {
		return errors.Mark(errors.Errorf("avatar %s has no wallet for chain %q, link one before minting to this avatar", avatar.ID, req.Chain), errs.NotFound)
	}

	req.SendToAddress = wallet.Address
	req.SendToAvatarID = avatar.ID
	req.SendToAvatarUsername = avatar.Username
	return nil
}

// preferredWallet picks the avatar's default wallet on the chain, or the
// first matching wallet when none is marked default.
func preferredWallet(avatar *datagateway.Avatar, chain nft.Chain) (datagateway.Wallet, bool) {
	wallets := lo.Filter(avatar.Wallets, func(w datagateway.Wallet, _ int) bool {
		return w.Chain == chain && w.Address != ""
	})
	if len(wallets) == 0 {
		return datagateway.Wallet{}, false
	}
	if w, ok := lo.Find(wallets, func(w datagateway.Wallet) bool { return w.IsDefault }); ok {
		return w, true
	}
	return wallets[0], true
}
