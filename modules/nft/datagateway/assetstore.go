package datagateway

import "context"

// AssetStore uploads off-chain content and returns a publicly reachable URL
// for it.
type AssetStore interface {
	// UploadAsset stores binary content under the given name.
	UploadAsset(ctx context.Context, data []byte, name string) (url string, err error)

	// UploadText stores a text document, typically metadata JSON.
	UploadText(ctx context.Context, text string, name string) (url string, err error)
}
