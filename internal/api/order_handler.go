package api

import (
	"net/http"

	"fishmarket-be/internal/order"
	"fishmarket-be/internal/principal"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders order.Service
}

type placeOrderRequest struct {
	Lines []order.CartLine `json:"lines" binding:"required"`
}

// Place submits the whole cart. A multi-farmer cart becomes several orders;
// the response always lists exactly the groups that committed.
func (h *OrderHandler) Place(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Orders.PlaceOrder(c.Request.Context(), p, req.Lines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *OrderHandler) Get(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	o, err := h.Orders.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

// ListMine returns the caller's side of the ledger: a customer sees the
// orders they placed, a farmer the orders placed with them.
func (h *OrderHandler) ListMine(c *gin.Context) {
	p, _ := principal.FromContext(c.Request.Context())

	orders, err := h.Orders.ListMine(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
