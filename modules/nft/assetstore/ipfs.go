package assetstore

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/url"

	"github.com/cockroachdb/errors"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/pkg/httpclient"
)

type IPFSConfig struct {
	// NodeURL is the HTTP API of the IPFS node, e.g. http://localhost:5001.
	NodeURL string `mapstructure:"node_url"`

	// GatewayURL is the public gateway content is served back from.
	GatewayURL string `mapstructure:"gateway_url"`
}

// IPFS adds content to a self-hosted IPFS node over its HTTP API.
type IPFS struct {
	client     *httpclient.Client
	gatewayURL string
}

var _ datagateway.AssetStore = (*IPFS)(nil)

func NewIPFS(config IPFSConfig) (*IPFS, error) {
	if config.GatewayURL == "" {
		config.GatewayURL = "https://ipfs.io/ipfs"
	}
	client, err := httpclient.New(config.NodeURL)
	if err != nil {
		return nil, errors.Wrap(err, "can't create IPFS client")
	}
	return &IPFS{
		client:     client,
		gatewayURL: config.GatewayURL,
	}, nil
}

type ipfsAddResponse struct {
	Hash string `json:"Hash"`
}

func (s *IPFS) UploadAsset(ctx context.Context, data []byte, name string) (string, error) {
	return s.add(ctx, data, name)
}

func (s *IPFS) UploadText(ctx context.Context, text string, name string) (string, error) {
	return s.add(ctx, []byte(text), name)
}

func (s *IPFS) add(ctx context.Context, data []byte, name string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", errors.Wrap(err, "can't build multipart body")
	}
	if _, err := part.Write(data); err != nil {
		return "", errors.Wrap(err, "can't write multipart body")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "can't finish multipart body")
	}

	resp, err := s.client.Post(ctx, "/api/v0/add", httpclient.RequestOptions{
		Body:        body.Bytes(),
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		return "", errors.Wrap(err, "can't add content to IPFS node")
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", errors.Errorf("IPFS node returned status %d: %s", resp.StatusCode(), resp.Body())
	}
	var out ipfsAddResponse
	if err := resp.UnmarshalBody(&out); err != nil {
		return "", errors.Wrap(err, "can't parse IPFS add response")
	}
	if out.Hash == "" {
		return "", errors.New("IPFS add response has no Hash")
	}
	gatewayURL, err := url.JoinPath(s.gatewayURL, out.Hash)
	if err != nil {
		return "", errors.Wrap(err, "can't build gateway url")
	}
	return gatewayURL, nil
}
