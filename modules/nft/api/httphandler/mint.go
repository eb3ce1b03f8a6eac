package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gaze-network/nft-minter/common"
	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
	"github.com/gaze-network/nft-minter/pkg/poll"
)

type waitRequest struct {
	IntervalSeconds int  `json:"intervalSeconds"`
	BudgetSeconds   int  `json:"budgetSeconds"`
	WaitTillDone    bool `json:"waitTillDone"`
}

func (w waitRequest) toPolicy() poll.Policy {
	return poll.Policy{
		Interval:     secondsToDuration(w.IntervalSeconds),
		Budget:       secondsToDuration(w.BudgetSeconds),
		WaitTillDone: w.WaitTillDone,
	}
}

type mintRequest struct {
	Chain         string `json:"chain"`
	Standard      string `json:"standard"`
	AssetStorage  string `json:"assetStorage"`
	MetadataStore string `json:"metadataStore"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Symbol      string `json:"symbol"`
	Price       string `json:"price"`
	Discount    string `json:"discount"`

	Image        []byte `json:"image"`
	ImageURL     string `json:"imageUrl"`
	Thumbnail    []byte `json:"thumbnail"`
	ThumbnailURL string `json:"thumbnailUrl"`

	JSONMetadata    string `json:"jsonMetadata"`
	JSONMetadataURL string `json:"jsonMetadataUrl"`

	Attributes map[string]any `json:"attributes"`
	MemoText   string         `json:"memoText"`

	NumberToMint int `json:"numberToMint"`

	MintedByAvatarID string `json:"mintedByAvatarId"`

	SendToAddress        string `json:"sendToAddress"`
	SendToAvatarID       string `json:"sendToAvatarId"`
	SendToAvatarUsername string `json:"sendToAvatarUsername"`
	SendToAvatarEmail    string `json:"sendToAvatarEmail"`

	MintWait waitRequest `json:"mintWait"`
	SendWait waitRequest `json:"sendWait"`

	ReportStyle string `json:"reportStyle"`
}

func (r mintRequest) toDomain() (*nft.MintRequest, error) {
	price, err := parseDecimal(r.Price)
	if err != nil {
		return nil, errs.NewPublicError("invalid price")
	}
	discount, err := parseDecimal(r.Discount)
	if err != nil {
		return nil, errs.NewPublicError("invalid discount")
	}
	mintedBy, err := parseUUID(r.MintedByAvatarID)
	if err != nil {
		return nil, errs.NewPublicError("invalid mintedByAvatarId")
	}
	sendTo, err := parseUUID(r.SendToAvatarID)
	if err != nil {
		return nil, errs.NewPublicError("invalid sendToAvatarId")
	}
	return &nft.MintRequest{
		Chain:                nft.Chain(r.Chain),
		Standard:             nft.Standard(r.Standard),
		AssetStorage:         nft.StorageMechanism(r.AssetStorage),
		MetadataStore:        r.MetadataStore,
		Title:                r.Title,
		Description:          r.Description,
		Symbol:               r.Symbol,
		Price:                price,
		Discount:             discount,
		Image:                r.Image,
		ImageURL:             r.ImageURL,
		Thumbnail:            r.Thumbnail,
		ThumbnailURL:         r.ThumbnailURL,
		JSONMetadata:         r.JSONMetadata,
		JSONMetadataURL:      r.JSONMetadataURL,
		Attributes:           r.Attributes,
		MemoText:             r.MemoText,
		NumberToMint:         r.NumberToMint,
		MintedByAvatarID:     mintedBy,
		SendToAddress:        r.SendToAddress,
		SendToAvatarID:       sendTo,
		SendToAvatarUsername: r.SendToAvatarUsername,
		SendToAvatarEmail:    r.SendToAvatarEmail,
		MintWait:             r.MintWait.toPolicy(),
		SendWait:             r.SendWait.toPolicy(),
		ReportStyle:          nft.ReportStyle(r.ReportStyle),
	}, nil
}

type mintResult struct {
	NFT     nftResult `json:"nft"`
	Warning string    `json:"warning,omitempty"`
	Report  string    `json:"report"`
}

type mintResponse = common.HttpResponse[mintResult]

func (h *HttpHandler) Mint(ctx *fiber.Ctx) error {
	var request mintRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	domainReq, err := request.toDomain()
	if err != nil {
		return errors.WithStack(err)
	}
	result, err := h.usecase.Mint(ctx.UserContext(), domainReq)
	if err != nil {
		return errors.Wrap(err, "error during Mint")
	}
	resp := mintResponse{
		Result: &mintResult{
			NFT:     mapNFTToResult(result.NFT),
			Warning: result.Warning,
			Report:  result.Report,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
