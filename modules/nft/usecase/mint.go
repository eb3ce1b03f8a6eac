package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
	"github.com/gaze-network/nft-minter/pkg/logger"
	"github.com/gaze-network/nft-minter/pkg/logger/slogx"
	"github.com/gaze-network/nft-minter/pkg/poll"
)

// Mint runs the full mint flow: validate, resolve the destination wallet,
// upload assets and metadata, mint on chain, persist the canonical record and
// finally attempt the post-mint send.
//
// When persisting fails after a successful on-chain mint, the minted NFT is
// still returned alongside an error kinded errs.PersistenceFailed so callers
// can re-persist without minting again. A failed post-mint send never fails
// the mint, it is recorded in the transfer-hash field and surfaced as a
// warning.
func (u *Usecase) Mint(ctx context.Context, req *nft.MintRequest) (*nft.MintResult, error) {
	return u.mint(ctx, req, false)
}

// MintOutcome pairs a mint result with its error for channel delivery.
type MintOutcome struct {
	Result *nft.MintResult
	Err    error
}

// MintAsync runs the same mint flow on a goroutine and delivers the outcome
// on the returned buffered channel, so the result is kept even when the
// caller receives late.
func (u *Usecase) MintAsync(ctx context.Context, req *nft.MintRequest) <-chan MintOutcome {
	out := make(chan MintOutcome, 1)
	go func() {
		defer close(out)
		result, err := u.mint(ctx, req, false)
		out <- MintOutcome{Result: result, Err: err}
	}()
	return out
}

func (u *Usecase) mint(ctx context.Context, req *nft.MintRequest, geo bool) (*nft.MintResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx = logger.WithContext(ctx, slogx.Stringer("chain", req.Chain), slogx.String("title", req.Title))

	chain, err := u.chainProvider(ctx, req.Chain)
	if err != nil {
		return nil, err
	}
	if err := u.resolveDestination(ctx, req); err != nil {
		return nil, errors.Wrap(err, "can't resolve mint destination")
	}
	req.ApplyDefaults(geo)

	if err := u.uploadAssets(ctx, req); err != nil {
		return nil, err
	}
	if err := u.prepareMetadata(ctx, req); err != nil {
		return nil, err
	}

	receipt, err := u.mintOnChain(ctx, chain, req)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Minted NFT on chain",
		slogx.String("tx_hash", receipt.TransactionHash),
		slogx.String("token_address", receipt.TokenAddress))

	n := &nft.NFT{
		ID:                   uuid.New(),
		MintTransactionHash:  receipt.TransactionHash,
		MintWalletAddress:    receipt.MintWalletAddress,
		TokenAddress:         receipt.TokenAddress,
		Chain:                req.Chain,
		Standard:             req.Standard,
		AssetStorage:         req.AssetStorage,
		Symbol:               req.Symbol,
		Title:                req.Title,
		Description:          req.Description,
		Price:                req.Price,
		Discount:             req.Discount,
		SellerFeeBasisPoints: nft.DefaultSellerFeeBasisPoints,
		Image:                req.Image,
		ImageURL:             req.ImageURL,
		Thumbnail:            req.Thumbnail,
		ThumbnailURL:         req.ThumbnailURL,
		JSONMetadata:         req.JSONMetadata,
		JSONMetadataURL:      req.JSONMetadataURL,
		Attributes:           req.Attributes,
		MemoText:             req.MemoText,
		NumberMinted:         req.NumberToMint,
		MintedByAvatarID:     req.MintedByAvatarID,
		MintedAt:             time.Now().UTC(),
		SendToAddress:        req.SendToAddress,
		SendToAvatarID:       req.SendToAvatarID,
		SendToAvatarUsername: req.SendToAvatarUsername,
	}
	result := &nft.MintResult{NFT: n}

	store, storeName, err := u.recordStore(ctx, req.MetadataStore)
	if err != nil {
		result.Report = nft.FormatMintReport(result, req.ReportStyle)
		return result, errors.Mark(errors.Wrapf(err, "NFT %s minted but its record store is unavailable", n.ID), errs.PersistenceFailed)
	}
	n.MetadataStore = storeName
	if err := u.persistNFT(ctx, store, n); err != nil {
		result.Report = nft.FormatMintReport(result, req.ReportStyle)
		return result, errors.Mark(errors.Wrapf(err, "NFT %s minted but saving its record to %q failed", n.ID, storeName), errs.PersistenceFailed)
	}

	if req.SendToAddress != "" {
		u.sendAfterMint(ctx, chain, store, req, n, result)
	}

	result.Report = nft.FormatMintReport(result, req.ReportStyle)
	return result, nil
}

// uploadAssets turns raw image and thumbnail bytes into public URLs through
// the request's asset mechanism. Already supplied URLs are kept as-is.
func (u *Usecase) uploadAssets(ctx context.Context, req *nft.MintRequest) error {
	if len(req.Image) == 0 && len(req.Thumbnail) == 0 {
		return nil
	}
	if req.AssetStorage == nft.StorageExternalURL {
		return errors.Mark(errors.New("asset storage external-url can't upload raw bytes, supply imageUrl and thumbnailUrl instead"), errs.InvalidArgument)
	}
	store, err := u.assetStore(ctx, req.AssetStorage)
	if err != nil {
		return err
	}
	if len(req.Image) > 0 && req.ImageURL == "" {
		url, err := store.UploadAsset(ctx, req.Image, req.Title)
		if err != nil {
			return errors.Wrapf(err, "can't upload image to %q", req.AssetStorage)
		}
		req.ImageURL = url
	}
	if len(req.Thumbnail) > 0 && req.ThumbnailURL == "" {
		url, err := store.UploadAsset(ctx, req.Thumbnail, req.Title+"-thumbnail")
		if err != nil {
			return errors.Wrapf(err, "can't upload thumbnail to %q", req.AssetStorage)
		}
		req.ThumbnailURL = url
	}
	return nil
}

// prepareMetadata builds the standard-specific document (unless the caller
// supplied one) and uploads it. With external-url storage the caller-supplied
// URL is used untouched.
func (u *Usecase) prepareMetadata(ctx context.Context, req *nft.MintRequest) error {
	if req.AssetStorage == nft.StorageExternalURL {
		return nil
	}
	if req.JSONMetadata == "" {
		document, err := nft.BuildMetadataDocument(req)
		if err != nil {
			return errors.Wrap(err, "can't build metadata document")
		}
		req.JSONMetadata = document
	}
	store, err := u.assetStore(ctx, req.AssetStorage)
	if err != nil {
		return err
	}
	url, err := store.UploadText(ctx, req.JSONMetadata, req.Title+".json")
	if err != nil {
		return errors.Wrapf(err, "can't upload metadata document to %q", req.AssetStorage)
	}
	req.JSONMetadataURL = url
	return nil
}

// mintOnChain submits the mint under the request's wait policy. Amount-aware
// standards mint the whole batch in one call, others mint one edition per
// call and keep the last receipt as the canonical one.
func (u *Usecase) mintOnChain(ctx context.Context, chain datagateway.ChainProvider, req *nft.MintRequest) (*datagateway.MintReceipt, error) {
	editions, batch := req.NumberToMint, 1
	if req.Standard == nft.StandardERC1155 {
		editions, batch = 1, req.NumberToMint
	}
	params := datagateway.MintParams{
		Title:       req.Title,
		Symbol:      req.Symbol,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		MetadataURL: req.JSONMetadataURL,
		Memo:        req.MemoText,
		Standard:    req.Standard,
		Amount:      batch,
	}
	var receipt *datagateway.MintReceipt
	for i := 0; i < editions; i++ {
		var err error
		receipt, err = poll.Do(ctx, func(ctx context.Context) (*datagateway.MintReceipt, error) {
			return chain.MintNFT(ctx, params)
		}, req.MintWait)
		if err != nil {
			return nil, errors.Wrapf(err, "mint on chain %q failed", req.Chain)
		}
	}
	return receipt, nil
}

func (u *Usecase) persistNFT(ctx context.Context, store datagateway.RecordDataGateway, n *nft.NFT) error {
	rec, err := nft.BuildNFTRecord(n)
	if err != nil {
		return err
	}
	if _, err := store.SaveRecord(ctx, rec); err != nil {
		return err
	}
	return nil
}

// sendAfterMint transfers the minted token to its destination. Failure is
// downgraded to a warning with the failure text kept in the transfer-hash
// field, the mint itself stays successful.
func (u *Usecase) sendAfterMint(ctx context.Context, chain datagateway.ChainProvider, store datagateway.RecordDataGateway, req *nft.MintRequest, n *nft.NFT, result *nft.MintResult) {
	hash, err := poll.Do(ctx, func(ctx context.Context) (string, error) {
		return chain.SendNFT(ctx, datagateway.SendParams{
			FromAddress:  n.MintWalletAddress,
			ToAddress:    req.SendToAddress,
			TokenAddress: n.TokenAddress,
			Amount:       n.NumberMinted,
			Memo:         n.MemoText,
		})
	}, req.SendWait)
	if err != nil {
		n.SendTransactionHash = fmt.Sprintf("send to %s failed: %s", req.SendToAddress, err)
		result.Warning = fmt.Sprintf("NFT minted but sending it to %s failed: %s", req.SendToAddress, err)
		logger.WarnContext(ctx, "Post-mint send failed",
			slogx.Error(err),
			slogx.String("to_address", req.SendToAddress))
	} else {
		n.SendTransactionHash = hash
	}

	// Keep the stored record in step with the send outcome. This is best
	// effort, the mint already succeeded and was persisted.
	if err := u.persistNFT(ctx, store, n); err != nil {
		logger.WarnContext(ctx, "Can't update NFT record with send outcome", slogx.Error(err))
		if result.Warning == "" {
			result.Warning = fmt.Sprintf("NFT minted and sent but updating its record failed: %s", err)
		}
	}
}
