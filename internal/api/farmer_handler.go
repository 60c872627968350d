package api

import (
	"mime/multipart"
	"net/http"

	"fishmarket-be/internal/customer"
	"fishmarket-be/internal/farmer"
	"fishmarket-be/internal/principal"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Farmers   farmer.Service
	Customers customer.Service
}

// GetFarmer serves the farmer directory: any signed-in principal may read a
// full profile.
func (h *ProfileHandler) GetFarmer(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	f, err := h.Farmers.GetProfile(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"farmer": f})
}

type updateFarmerRequest struct {
	FullName        *string `json:"full_name"`
	CompanyName     *string `json:"company_name"`
	Phone           *string `json:"phone"`
	Country         *string `json:"country"`
	State           *string `json:"state"`
	LocalGovernment *string `json:"local_government"`
	City            *string `json:"city"`
	Street          *string `json:"street"`
}

func (h *ProfileHandler) UpdateFarmer(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	var req updateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.Farmers.UpdateProfile(c.Request.Context(), p, p.ID, farmer.UpdateParams{
		FullName:        req.FullName,
		CompanyName:     req.CompanyName,
		Phone:           req.Phone,
		Country:         req.Country,
		State:           req.State,
		LocalGovernment: req.LocalGovernment,
		City:            req.City,
		Street:          req.Street,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"farmer": f})
}

// UploadDocuments accepts multipart form files named business_cert and
// id_card. Either may be omitted.
func (h *ProfileHandler) UploadDocuments(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	var cert, card multipart.File
	if header, err := c.FormFile("business_cert"); err == nil {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read business_cert"})
			return
		}
		defer f.Close()
		cert = f
	}
	if header, err := c.FormFile("id_card"); err == nil {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read id_card"})
			return
		}
		defer f.Close()
		card = f
	}

	if cert == nil && card == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no document provided"})
		return
	}

	fm, err := h.Farmers.UploadDocuments(c.Request.Context(), p, cert, card)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"farmer": fm})
}

// GetCustomer returns the caller's own profile; customers are not listed in
// any directory.
func (h *ProfileHandler) GetCustomer(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	cust, err := h.Customers.GetProfile(c.Request.Context(), p, p.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cust})
}

type updateCustomerRequest struct {
	FullName       *string `json:"full_name"`
	CompanyName    *string `json:"company_name"`
	CompanyAddress *string `json:"company_address"`
	Phone          *string `json:"phone"`
}

func (h *ProfileHandler) UpdateCustomer(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cust, err := h.Customers.UpdateProfile(c.Request.Context(), p, p.ID, customer.UpdateParams{
		FullName:       req.FullName,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		Phone:          req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cust})
}
