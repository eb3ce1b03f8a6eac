package nft

// MintResult is what a completed (or partially completed) mint hands back.
// Warning carries non-fatal trouble such as a failed post-mint send, Report
// is the formatted human readable summary.
type MintResult struct {
	NFT     *NFT
	Warning string
	Report  string
}

// PlaceResult is the placement counterpart of MintResult.
type PlaceResult struct {
	GeoNFT  *GeoSpatialNFT
	Warning string
	Report  string
}
