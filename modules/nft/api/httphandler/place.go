package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"

	"github.com/gaze-network/nft-minter/common"
	"github.com/gaze-network/nft-minter/common/errs"
	"github.com/gaze-network/nft-minter/modules/nft/nft"
)

type placementFields struct {
	GeoMetadataStore string `json:"geoMetadataStore"`

	Lat  int64 `json:"lat"`
	Long int64 `json:"long"`

	PermanentSpawn             bool `json:"permanentSpawn"`
	AllowOtherPlayersToCollect bool `json:"allowOtherPlayersToCollect"`
	GlobalSpawnQuantity        int  `json:"globalSpawnQuantity"`
	PlayerSpawnQuantity        int  `json:"playerSpawnQuantity"`
	RespawnDurationSeconds     int  `json:"respawnDurationSeconds"`

	Sprite2D    []byte `json:"sprite2d"`
	Sprite2DURI string `json:"sprite2dUri"`
	Object3D    []byte `json:"object3d"`
	Object3DURI string `json:"object3dUri"`
}

type placeRequest struct {
	placementFields

	OriginalNFTID    string `json:"originalNftId"`
	NFTMetadataStore string `json:"nftMetadataStore"`
	PlacedByAvatarID string `json:"placedByAvatarId"`
	ReportStyle      string `json:"reportStyle"`
}

type placeResult struct {
	GeoNFT  geoNFTResult `json:"geoNft"`
	Warning string       `json:"warning,omitempty"`
	Report  string       `json:"report"`
}

type placeResponse = common.HttpResponse[placeResult]

func (h *HttpHandler) Place(ctx *fiber.Ctx) error {
	var request placeRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	originalID, err := parseUUID(request.OriginalNFTID)
	if err != nil {
		return errs.NewPublicError("invalid originalNftId")
	}
	placedBy, err := parseUUID(request.PlacedByAvatarID)
	if err != nil {
		return errs.NewPublicError("invalid placedByAvatarId")
	}
	result, err := h.usecase.Place(ctx.UserContext(), &nft.PlaceRequest{
		OriginalNFTID:              originalID,
		NFTMetadataStore:           request.NFTMetadataStore,
		GeoMetadataStore:           request.GeoMetadataStore,
		PlacedByAvatarID:           placedBy,
		Lat:                        request.Lat,
		Long:                       request.Long,
		PermanentSpawn:             request.PermanentSpawn,
		AllowOtherPlayersToCollect: request.AllowOtherPlayersToCollect,
		GlobalSpawnQuantity:        request.GlobalSpawnQuantity,
		PlayerSpawnQuantity:        request.PlayerSpawnQuantity,
		RespawnDurationSeconds:     request.RespawnDurationSeconds,
		Sprite2D:                   request.Sprite2D,
		Sprite2DURI:                request.Sprite2DURI,
		Object3D:                   request.Object3D,
		Object3DURI:                request.Object3DURI,
		ReportStyle:                nft.ReportStyle(request.ReportStyle),
	})
	if err != nil {
		return errors.Wrap(err, "error during Place")
	}
	resp := placeResponse{
		Result: &placeResult{
			GeoNFT:  mapGeoNFTToResult(result.GeoNFT),
			Warning: result.Warning,
			Report:  result.Report,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type mintAndPlaceRequest struct {
	mintRequest
	placementFields
}

func (h *HttpHandler) MintAndPlace(ctx *fiber.Ctx) error {
	var request mintAndPlaceRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	mintReq, err := request.mintRequest.toDomain()
	if err != nil {
		return errors.WithStack(err)
	}
	result, err := h.usecase.MintAndPlace(ctx.UserContext(), &nft.MintAndPlaceRequest{
		MintRequest:                *mintReq,
		GeoMetadataStore:           request.GeoMetadataStore,
		Lat:                        request.Lat,
		Long:                       request.Long,
		PermanentSpawn:             request.PermanentSpawn,
		AllowOtherPlayersToCollect: request.AllowOtherPlayersToCollect,
		GlobalSpawnQuantity:        request.GlobalSpawnQuantity,
		PlayerSpawnQuantity:        request.PlayerSpawnQuantity,
		RespawnDurationSeconds:     request.RespawnDurationSeconds,
		Sprite2D:                   request.Sprite2D,
		Sprite2DURI:                request.Sprite2DURI,
		Object3D:                   request.Object3D,
		Object3DURI:                request.Object3DURI,
	})
	if err != nil {
		return errors.Wrap(err, "error during MintAndPlace")
	}
	resp := placeResponse{
		Result: &placeResult{
			GeoNFT:  mapGeoNFTToResult(result.GeoNFT),
			Warning: result.Warning,
			Report:  result.Report,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
