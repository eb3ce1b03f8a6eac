package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/internal/entity"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

// FindNear returns the placements within radius of the given point. Radius
// zero is an exact-coordinate lookup and uses the flattened "lat:long" field
// so backends can answer it without scanning. A positive radius scans the
// store and filters by a bounding box spanning 2*radius per axis around the
// point, clamped at zero.
func (u *Usecase) FindNear(ctx context.Context, lat, long, radius int64, storeName string) ([]*nft.GeoSpatialNFT, error) {
	if lat < 0 || long < 0 || radius < 0 {
		return nil, errors.Mark(errors.New("lat, long and radius must not be negative"), errs.InvalidArgument)
	}

	if radius == 0 {
		store, name, err := u.recordStore(ctx, storeName)
		if err != nil {
			return nil, err
		}
		recs, err := store.LoadRecordsByField(ctx, entity.RecordKindGeoNFT, nft.RecordKeyGeoLatLong, nft.LatLongKey(lat, long))
		if err != nil {
			return nil, errors.Wrapf(err, "can't look up GeoNFTs at %s in %q", nft.LatLongKey(lat, long), name)
		}
		return decodeGeoNFTs(recs)
	}

	all, err := u.LoadAllGeoNFTs(ctx, storeName)
	if err != nil {
		return nil, err
	}
	box := nft.NewBoundingBox(lat, long, radius)
	return lo.Filter(all, func(g *nft.GeoSpatialNFT, _ int) bool {
		return box.Contains(g.Lat, g.Long)
	}), nil
}
