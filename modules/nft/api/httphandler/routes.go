package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/nft/v1")

	r.Post("/mint", h.Mint)
	r.Post("/send", h.Send)
	r.Post("/geonfts/place", h.Place)
	r.Post("/geonfts/mint-and-place", h.MintAndPlace)
	r.Get("/geonfts/near", h.FindNear)
	r.Get("/geonfts", h.ListGeoNFTs)
	r.Get("/geonfts/:id", h.GetGeoNFT)
	r.Get("/nfts", h.ListNFTs)
	r.Get("/nfts/hash/:hash", h.GetNFTByHash)
	r.Get("/nfts/:id", h.GetNFT)
	r.Get("/content/:id", h.GetContent)

	return nil
}
