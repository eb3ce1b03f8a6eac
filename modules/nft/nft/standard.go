package nft

import (
	"github.com/cockroachdb/errors"

	"github.com/gaze-network/nft-minter/common/errs"
)

// Standard is the token standard a mint targets.
type Standard string

const (
	StandardSPL     Standard = "spl"
	StandardERC721  Standard = "erc721"
	StandardERC1155 Standard = "erc1155"
)

func (s Standard) String() string {
	return string(s)
}

// ValidateStandard checks that the token standard can be minted on the given
// chain. SPL belongs to Solana only, the ERC standards to EVM chains only.
func ValidateStandard(standard Standard, chain Chain) error {
	if !chain.IsSupported() {
		return errors.Mark(errors.Errorf("chain %q is not supported", chain), errs.Unsupported)
	}
	switch standard {
	case StandardSPL:
		if chain != ChainSolana {
			return errors.Mark(errors.Errorf("standard %q can only be minted on %q, not %q", standard, ChainSolana, chain), errs.InvalidArgument)
		}
	case StandardERC721, StandardERC1155:
		if !chain.IsEVM() {
			return errors.Mark(errors.Errorf("standard %q requires an EVM chain, %q is not one", standard, chain), errs.InvalidArgument)
		}
	default:
		return errors.Mark(errors.Errorf("unknown token standard %q", standard), errs.InvalidArgument)
	}
	return nil
}
