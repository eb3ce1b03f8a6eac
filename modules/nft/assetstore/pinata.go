package assetstore

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/url"

	"github.com/cockroachdb/errors"

	"github.com/gaze-network/nft-minter/modules/nft/datagateway"
	"github.com/gaze-network/nft-minter/pkg/httpclient"
)

type PinataConfig struct {
	APIURL     string `mapstructure:"api_url"`
	GatewayURL string `mapstructure:"gateway_url"`
	JWT        string `mapstructure:"jwt"`
}

// Pinata pins content through the Pinata pinning API and serves it back
// through the configured gateway.
type Pinata struct {
	client     *httpclient.Client
	gatewayURL string
}

var _ datagateway.AssetStore = (*Pinata)(nil)

func NewPinata(config PinataConfig) (*Pinata, error) {
	if config.APIURL == "" {
		config.APIURL = "https://api.pinata.cloud"
	}
	if config.GatewayURL == "" {
		config.GatewayURL = "https://gateway.pinata.cloud/ipfs"
	}
	client, err := httpclient.New(config.APIURL, httpclient.Config{
		Headers: map[string]string{
			"Authorization": "Bearer " + config.JWT,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create Pinata client")
	}
	return &Pinata{
		client:     client,
		gatewayURL: config.GatewayURL,
	}, nil
}

type pinataPinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func (p *Pinata) UploadAsset(ctx context.Context, data []byte, name string) (string, error) {
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

	resp, err := p.client.Post(ctx, "/pinning/pinFileToIPFS", httpclient.RequestOptions{
		Body:        body.Bytes(),
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		return "", errors.Wrap(err, "can't pin file to Pinata")
	}
	return p.parsePinResponse(resp)
}

func (p *Pinata) UploadText(ctx context.Context, text string, name string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"pinataContent": json.RawMessage(text),
		"pinataMetadata": map[string]string{
			"name": name,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "can't marshal pin payload")
	}
	resp, err := p.client.Post(ctx, "/pinning/pinJSONToIPFS", httpclient.RequestOptions{
		Body: payload,
	})
	if err != nil {
		return "", errors.Wrap(err, "can't pin JSON to Pinata")
	}
	return p.parsePinResponse(resp)
}

func (p *Pinata) parsePinResponse(resp *httpclient.HttpResponse) (string, error) {
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", errors.Errorf("Pinata returned status %d: %s", resp.StatusCode(), resp.Body())
	}
	var out pinataPinResponse
	if err := resp.UnmarshalBody(&out); err != nil {
		return "", errors.Wrap(err, "can't parse Pinata response")
	}
	if out.IpfsHash == "" {
		return "", errors.New("Pinata response has no IpfsHash")
	}
	gatewayURL, err := url.JoinPath(p.gatewayURL, out.IpfsHash)
	if err != nil {
		return "", errors.Wrap(err, "can't build gateway url")
	}
	return gatewayURL, nil
}
