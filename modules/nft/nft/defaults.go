package nft

import "fmt"

const (
	DefaultSymbol    = "OASISNFT"
	DefaultGeoSymbol = "GEONFT"
)

// ApplyDefaults fills the request fields the caller may leave empty. The memo
// default annotates who minted what and for how much so it survives on chain
// next to the token.
func (r *MintRequest) ApplyDefaults(geo bool) {
	if r.Symbol == "" {
		if geo {
			r.Symbol = DefaultGeoSymbol
		} else {
			r.Symbol = DefaultSymbol
		}
	}
	if r.MemoText == "" {
		kind := "NFT"
		if geo {
			kind = "GeoNFT"
		}
		r.MemoText = fmt.Sprintf("%s %s minted on The OASIS with title '%s' by avatar with id %s for the price of %s",
			r.Chain, kind, r.Title, r.MintedByAvatarID, r.Price)
	}
	if r.NumberToMint < 1 {
		r.NumberToMint = 1
	}
	if r.ReportStyle == "" {
		r.ReportStyle = ReportPlain
	}
}
