package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

// LoadNFT loads one NFT by id from the named record store (empty selects the
// default store).
func (u *Usecase) LoadNFT(ctx context.Context, id uuid.UUID, storeName string) (*nft.NFT, error) {
	store, name, err := u.recordStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	rec, err := store.LoadRecordByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load NFT record %s from %q", id, name)
	}
	return nft.DecodeNFTRecord(rec)
}

// LoadNFTByHash finds the NFT minted with the given transaction hash.
func (u *Usecase) LoadNFTByHash(ctx context.Context, hash string, storeName string) (*nft.NFT, error) {
	store, name, err := u.recordStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	recs, err := store.LoadRecordsByField(ctx, entity.RecordKindNFT, nft.RecordKeyNFTHash, hash)
	if err != nil {
		return nil, errors.Wrapf(err, "can't look up NFT with hash %q in %q", hash, name)
	}
	if len(recs) == 0 {
		return nil, errors.Mark(errors.Errorf("no NFT with transaction hash %q in %q", hash, name), errs.NotFound)
	}
	return nft.DecodeNFTRecord(recs[0])
}

// LoadAllNFTs lists every NFT in the named record store.
func (u *Usecase) LoadAllNFTs(ctx context.Context, storeName string) ([]*nft.NFT, error) {
	store, name, err := u.recordStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	recs, err := store.LoadAllRecords(ctx, entity.RecordKindNFT)
	if err != nil {
		return nil, errors.Wrapf(err, "can't list NFT records in %q", name)
	}
	return decodeNFTs(recs)
}

// LoadNFTsForAvatar lists the NFTs minted by one avatar.
func (u *Usecase) LoadNFTsForAvatar(ctx context.Context, avatarID uuid.UUID, storeName string) ([]*nft.NFT, error) {
	store, name, err := u.recordStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	recs, err := store.LoadRecordsByOwner(ctx, entity.RecordKindNFT, avatarID)
	if err != nil {
		return nil, errors.Wrapf(err, "can't list NFT records of avatar %s in %q", avatarID, name)
	}
	return decodeNFTs(recs)
}

// LoadGeoNFT loads one placement by its own id.
func (u *Usecase) LoadGeoNFT(ctx context.Context, id uuid.UUID, storeName string) (*nft.GeoSpatialNFT, error) {
	store, name, err := u.recordStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	rec, err := store.LoadRecordByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load GeoNFT record %s from %q", id, name)
	}
	return nft.DecodeGeoNFTRecord(rec)
}

// LoadAllGeoNFTs lists every placement in the named record store.
func (u *Usecase) LoadAllGeoNFTs(ctx context.Context, storeName string) ([]*nft.GeoSpatialNFT, error) {
	store, name, err := u.recordStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	recs, err := store.LoadAllRecords(ctx, entity.RecordKindGeoNFT)
	if err != nil {
		return nil, errors.Wrapf(err, "can't list GeoNFT records in %q", name)
	}
	return decodeGeoNFTs(recs)
}

// LoadGeoNFTsForAvatar lists the placements made by one avatar.
func (u *Usecase) LoadGeoNFTsForAvatar(ctx context.Context, avatarID uuid.UUID, storeName string) ([]*nft.GeoSpatialNFT, error) {
	store, name, err := u.recordStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	recs, err := store.LoadRecordsByOwner(ctx, entity.RecordKindGeoNFT, avatarID)
	if err != nil {
		return nil, errors.Wrapf(err, "can't list GeoNFT records of avatar %s in %q", avatarID, name)
	}
	return decodeGeoNFTs(recs)
}

func decodeNFTs(recs []*entity.Record) ([]*nft.NFT, error) {
	out := make([]*nft.NFT, 0, len(recs))
	for _, rec := range recs {
		n, err := nft.DecodeNFTRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func decodeGeoNFTs(recs []*entity.Record) ([]*nft.GeoSpatialNFT, error) {
	out := make([]*nft.GeoSpatialNFT, 0, len(recs))
	for _, rec := range recs {
		g, err := nft.DecodeGeoNFTRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
