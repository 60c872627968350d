package api

import (
	"net/http"

	"fishmarket-be/internal/listing"
	"fishmarket-be/internal/principal"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	Listings listing.Service
}

type createListingRequest struct {
	FishKind    string  `json:"fish_kind" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	Description string  `json:"description"`
}

func (h *ListingHandler) Create(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	l, err := h.Listings.Create(c.Request.Context(), p, listing.CreateInput{
		FishKind:    listing.FishKind(req.FishKind),
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing": l})
}

func (h *ListingHandler) Get(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	l, err := h.Listings.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": l})
}

type updateListingRequest struct {
	FishKind    *listing.FishKind `json:"fish_kind"`
	Quantity    *int              `json:"quantity"`
	UnitPrice   *float64          `json:"unit_price"`
	Description *string           `json:"description"`
	IsActive    *bool             `json:"is_active"`
}

func (h *ListingHandler) Update(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	var req updateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	l, err := h.Listings.Update(c.Request.Context(), p, c.Param("id"), listing.UpdateParams{
		FishKind:    req.FishKind,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": l})
}

func (h *ListingHandler) Delete(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	if err := h.Listings.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "listing removed"})
}

// Catalog is the buyer-facing browse surface: active listings joined with
// the seller card.
func (h *ListingHandler) Catalog(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	entries, err := h.Listings.Catalog(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": entries})
}

// OwnerFeed returns the caller's own listings, inactive ones included.
func (h *ListingHandler) OwnerFeed(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	listings, err := h.Listings.OwnerFeed(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}
