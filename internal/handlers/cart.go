package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"karthika_back_end/internal/cart"
	"karthika_back_end/internal/middleware"
	"karthika_back_end/internal/models"
)

type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// owner resolves whose cart the request targets. An authenticated user always
// wins over a sessionId; anonymous requests identify via sessionId.
func cartOwner(c *gin.Context, sessionID string) cart.Owner {
	if userID := c.GetString(middleware.CtxUserID); userID != "" {
		return cart.Owner{UserID: userID}
	}
	return cart.Owner{SessionID: sessionID}
}

// GET /api/cart?sessionId=...
// A missing cart is not an error here: the client gets an empty shape.
func (h *CartHandler) Get(c *gin.Context) {
	owner := cartOwner(c, c.Query("sessionId"))
	if !owner.Valid() {
		respondError(c, http.StatusBadRequest, "Session ID or User ID is required")
		return
	}

	crt, _, err := h.store.Get(c.Request.Context(), owner)
	if err != nil {
		respondServerError(c, "Error fetching cart", err)
		return
	}
	respondData(c, http.StatusOK, crt)
}

// POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	var input struct {
		SessionID string  `json:"sessionId"`
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		MRP       float64 `json:"mrp"`
		Image     string  `json:"image"`
		Category  string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	owner := cartOwner(c, input.SessionID)
	if !owner.Valid() {
		respondError(c, http.StatusBadRequest, "Session ID or User ID is required")
		return
	}
	if input.ProductID == "" || input.Name == "" || input.Price <= 0 {
		respondError(c, http.StatusBadRequest, "Please provide productId, name and price")
		return
	}

	crt, err := h.store.Mutate(c.Request.Context(), owner, false, func(crt *models.Cart) error {
		crt.AddItem(models.CartItem{
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			MRP:       input.MRP,
			Image:     input.Image,
			Category:  input.Category,
		})
		return nil
	})
	if err != nil {
		respondServerError(c, "Error adding to cart", err)
		return
	}
	respondData(c, http.StatusOK, crt)
}

// PUT /api/cart/update
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
		ProductID string `json:"productId"`
		Quantity  *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" || input.Quantity == nil {
		respondError(c, http.StatusBadRequest, "Please provide productId and quantity")
		return
	}
	if *input.Quantity < 0 {
		respondError(c, http.StatusBadRequest, "Quantity cannot be negative")
		return
	}

	owner := cartOwner(c, input.SessionID)
	if !owner.Valid() {
		respondError(c, http.StatusBadRequest, "Session ID or User ID is required")
		return
	}

	crt, err := h.store.Mutate(c.Request.Context(), owner, true, func(crt *models.Cart) error {
		crt.SetQuantity(input.ProductID, *input.Quantity)
		return nil
	})
	if errors.Is(err, cart.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		respondServerError(c, "Error updating cart", err)
		return
	}
	respondData(c, http.StatusOK, crt)
}

// DELETE /api/cart/remove/:productId?sessionId=...
func (h *CartHandler) Remove(c *gin.Context) {
	owner := cartOwner(c, c.Query("sessionId"))
	if !owner.Valid() {
		respondError(c, http.StatusBadRequest, "Session ID or User ID is required")
		return
	}

	productID := c.Param("productId")
	crt, err := h.store.Mutate(c.Request.Context(), owner, true, func(crt *models.Cart) error {
		crt.RemoveItem(productID)
		return nil
	})
	if errors.Is(err, cart.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		respondServerError(c, "Error removing from cart", err)
		return
	}
	respondData(c, http.StatusOK, crt)
}

// DELETE /api/cart/clear?sessionId=...
func (h *CartHandler) Clear(c *gin.Context) {
	owner := cartOwner(c, c.Query("sessionId"))
	if !owner.Valid() {
		respondError(c, http.StatusBadRequest, "Session ID or User ID is required")
		return
	}

	crt, err := h.store.Mutate(c.Request.Context(), owner, true, func(crt *models.Cart) error {
		crt.Clear()
		return nil
	})
	if errors.Is(err, cart.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		respondServerError(c, "Error clearing cart", err)
		return
	}
	respondData(c, http.StatusOK, crt)
}
