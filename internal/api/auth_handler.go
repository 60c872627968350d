package api

import (
	"net/http"

	"fishmarket-be/internal/customer"
	"fishmarket-be/internal/farmer"

	"github.com/gin-gonic/gin"
)

// cookieMaxAge matches the token lifetime.
const cookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	Farmers   farmer.Service
	Customers customer.Service
}

type registerFarmerRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	CompanyName     string `json:"company_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	Country         string `json:"country"`
	State           string `json:"state"`
	LocalGovernment string `json:"local_government"`
	City            string `json:"city"`
	Street          string `json:"street"`
	IDDocKind       string `json:"id_doc_kind" binding:"required"`
}

func (h *AuthHandler) RegisterFarmer(c *gin.Context) {
	var req registerFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, f, err := h.Farmers.Register(c.Request.Context(), farmer.RegisterInput{
		FullName:        req.FullName,
		CompanyName:     req.CompanyName,
		Phone:           req.Phone,
		Email:           req.Email,
		Password:        req.Password,
		Country:         req.Country,
		State:           req.State,
		LocalGovernment: req.LocalGovernment,
		City:            req.City,
		Street:          req.Street,
		IDDocKind:       farmer.IDDocKind(req.IDDocKind),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	setAccessToken(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "farmer": f})
}

type registerCustomerRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
}

func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req registerCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, cust, err := h.Customers.Register(c.Request.Context(), customer.RegisterInput{
		FullName:       req.FullName,
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		Phone:          req.Phone,
		Email:          req.Email,
		Password:       req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	setAccessToken(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "customer": cust})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignInFarmer(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, f, err := h.Farmers.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setAccessToken(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "farmer": f})
}

func (h *AuthHandler) SignInCustomer(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, cust, err := h.Customers.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setAccessToken(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "customer": cust})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func setAccessToken(c *gin.Context, token string) {
	c.SetCookie("access_token", token, cookieMaxAge, "/", "", false, true)
}
