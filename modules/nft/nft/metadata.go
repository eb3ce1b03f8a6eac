package nft

import (
	"encoding/json"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// DefaultSellerFeeBasisPoints is the royalty written into generated Metaplex
// documents, 500 basis points = 5%.
const DefaultSellerFeeBasisPoints = 500

type metaplexAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

type metaplexDocument struct {
	Name                 string              `json:"name"`
	Symbol               string              `json:"symbol"`
	Description          string              `json:"description"`
	SellerFeeBasisPoints int                 `json:"seller_fee_basis_points"`
	Image                string              `json:"image,omitempty"`
	Attributes           []metaplexAttribute `json:"attributes,omitempty"`
	Price                decimal.Decimal     `json:"price"`
	Discount             decimal.Decimal     `json:"discount"`
	Memo                 string              `json:"memo,omitempty"`
}

type ercDocument struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Attributes  map[string]any  `json:"attributes,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Memo        string          `json:"memo,omitempty"`

	// Copies is only emitted for ERC-1155 editions.
	Copies int `json:"copies,omitempty"`
}

// BuildMetadataDocument renders the metadata JSON for the request's token
// standard. The request must already carry its resolved image URL and
// defaulted symbol and memo.
func BuildMetadataDocument(req *MintRequest) (string, error) {
	var doc any
	switch req.Standard {
	case StandardSPL:
		doc = metaplexDocument{
			Name:                 req.Title,
			Symbol:               req.Symbol,
			Description:          req.Description,
			SellerFeeBasisPoints: DefaultSellerFeeBasisPoints,
			Image:                req.ImageURL,
			Attributes:           metaplexAttributes(req.Attributes),
			Price:                req.Price,
			Discount:             req.Discount,
			Memo:                 req.MemoText,
		}
	case StandardERC721:
		doc = ercDocument{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.ImageURL,
			Attributes:  req.Attributes,
			Price:       req.Price,
			Discount:    req.Discount,
			Memo:        req.MemoText,
		}
	case StandardERC1155:
		copies := req.NumberToMint
		if copies < 1 {
			copies = 1
		}
		doc = ercDocument{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.ImageURL,
			Attributes:  req.Attributes,
			Price:       req.Price,
			Discount:    req.Discount,
			Memo:        req.MemoText,
			Copies:      copies,
		}
	default:
		return "", errors.Errorf("no metadata document shape for standard %q", req.Standard)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "can't marshal metadata document")
	}
	return string(out), nil
}

func metaplexAttributes(attrs map[string]any) []metaplexAttribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]metaplexAttribute, 0, len(keys))
	for _, k := range keys {
		out = append(out, metaplexAttribute{TraitType: k, Value: attrs[k]})
	}
	return out
}
