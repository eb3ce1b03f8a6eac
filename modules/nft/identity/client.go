package identity

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
	"github.com/gaze-network/nft-minter/pkg/httpclient"
)

type ClientConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// Client resolves avatars against an external identity HTTP API.
type Client struct {
	client *httpclient.Client
}

var _ datagateway.AvatarResolver = (*Client)(nil)

func NewClient(config ClientConfig) (*Client, error) {
	headers := make(map[string]string)
	if config.APIKey != "" {
		headers["X-API-Key"] = config.APIKey
	}
	client, err := httpclient.New(config.BaseURL, httpclient.Config{Headers: headers})
	if err != nil {
		return nil, errors.Wrap(err, "can't create identity client")
	}
	return &Client{client: client}, nil
}

type avatarModel struct {
	ID       uuid.UUID     `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Wallets  []walletModel `json:"wallets"`
}

type walletModel struct {
	Chain     string `json:"chain"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

func (c *Client) ResolveByID(ctx context.Context, id uuid.UUID) (*datagateway.Avatar, error) {
	return c.resolve(ctx, "/avatars/"+id.String())
}

func (c *Client) ResolveByUsername(ctx context.Context, username string) (*datagateway.Avatar, error) {
	return c.resolve(ctx, "/avatars/by-username/"+username)
}

func (c *Client) ResolveByEmail(ctx context.Context, email string) (*datagateway.Avatar, error) {
	return c.resolve(ctx, "/avatars/by-email/"+email)
}

func (c *Client) resolve(ctx context.Context, path string) (*datagateway.Avatar, error) {
	resp, err := c.client.Get(ctx, path, httpclient.RequestOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "identity API request failed")
	}
	if resp.StatusCode() == 404 {
		return nil, errors.Mark(errors.Errorf("avatar not found at %s", path), errs.NotFound)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, errors.Errorf("identity API returned status %d", resp.StatusCode())
	}
	var model avatarModel
	if err := resp.UnmarshalBody(&model); err != nil {
		return nil, errors.Wrap(err, "can't parse identity API response")
	}
	return &datagateway.Avatar{
		ID:       model.ID,
		Username: model.Username,
		Email:    model.Email,
		Wallets: lo.Map(model.Wallets, func(w walletModel, _ int) datagateway.Wallet {
			return datagateway.Wallet{
				Chain:     nft.Chain(w.Chain),
				Address:   w.Address,
				IsDefault: w.IsDefault,
			}
		}),
	}, nil
}
