package identity

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
)

// StaticResolver serves avatars from a fixed in-process set. Used in tests
// and local development where no identity API is running.
type StaticResolver struct {
	avatars []*datagateway.Avatar
}

var _ datagateway.AvatarResolver = (*StaticResolver)(nil)

func NewStaticResolver(avatars ...*datagateway.Avatar) *StaticResolver {
	return &StaticResolver{avatars: avatars}
}

func (r *StaticResolver) Add(avatar *datagateway.Avatar) {
	r.avatars = append(r.avatars, avatar)
}

func (r *StaticResolver) ResolveByID(_ context.Context, id uuid.UUID) (*datagateway.Avatar, error) {
	return r.find(func(a *datagateway.Avatar) bool { return a.ID == id }, "id %s", id.String())
}

func (r *StaticResolver) ResolveByUsername(_ context.Context, username string) (*datagateway.Avatar, error) {
	return r.find(func(a *datagateway.Avatar) bool { return a.Username == username }, "username %q", username)
}

func (r *StaticResolver) ResolveByEmail(_ context.Context, email string) (*datagateway.Avatar, error) {
	return r.find(func(a *datagateway.Avatar) bool { return a.Email == email }, "email %q", email)
}

func (r *StaticResolver) find(match func(*datagateway.Avatar) bool, format string, arg string) (*datagateway.Avatar, error) {
	for _, a := range r.avatars {
		if match(a) {
			clone := *a
			return &clone, nil
		}
	}
	return nil, errors.Mark(errors.Errorf("no avatar with "+format, arg), errs.NotFound)
}
