package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"karthika_back_end/internal/cart"
)

var cartUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// cookie auth protects the identity; origins are handled by CORS upstream
	CheckOrigin: func(r *http.Request) bool { return true },
}

const wsPingInterval = 30 * time.Second

type CartSocketHandler struct {
	store *cart.Store
}

func NewCartSocketHandler(store *cart.Store) *CartSocketHandler {
	return &CartSocketHandler{store: store}
}

// GET /api/cart/ws?sessionId=...
// Pushes the full cart document on connect and again after every mutation,
// so multiple tabs stay in sync without polling.
func (h *CartSocketHandler) Sync(c *gin.Context) {
	owner := cartOwner(c, c.Query("sessionId"))
	if !owner.Valid() {
		respondError(c, http.StatusBadRequest, "Session ID or User ID is required")
		return
	}
	conn, err := cartUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("⚠️ Cart websocket upgrade failed:", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.store.Subscribe(ctx, owner)
	defer sub.Close()

	push := func() error {
		crt, _, err := h.store.Get(ctx, owner)
		if err != nil {
			return err
		}
		return conn.WriteJSON(gin.H{"success": true, "data": crt})
	}

	if err := push(); err != nil {
		return
	}

	// drain client frames so close/pong handling works
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if err := push(); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}
