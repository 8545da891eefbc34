package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"karthika_back_end/internal/catalog"
	"karthika_back_end/internal/handlers"
	"karthika_back_end/internal/middleware"
	"karthika_back_end/internal/models"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth      *handlers.AuthHandler
	OAuth     *handlers.OAuthHandler
	Catalog   *handlers.CatalogHandler
	Cart      *handlers.CartHandler
	CartWS    *handlers.CartSocketHandler
	Leads     *handlers.LeadsHandler
	Downloads *handlers.DownloadsHandler
	Upload    *handlers.UploadHandler
	Guard     *middleware.Auth
}

// Register mounts the full API surface on the engine.
func Register(r *gin.Engine, h *Handlers) {
	started := time.Now()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Welcome to Karthika Secure Shop API",
		})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"uptime":  time.Since(started).String(),
		})
	})

	admin := []gin.HandlerFunc{h.Guard.Protect, middleware.Authorize(models.RoleAdmin)}

	// auth
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Guard.Protect, h.Auth.Me)
		auth.GET("/:provider", h.OAuth.Begin)
		auth.GET("/:provider/callback", h.OAuth.Callback)
	}

	// one route group per product kind, all served by the same handler
	for i := range catalog.Definitions {
		def := &catalog.Definitions[i]
		g := r.Group("/api/" + def.Route)
		{
			g.GET("", h.Catalog.List(def))
			g.GET("/:id", h.Catalog.Get(def))
			g.POST("", append(admin, h.Catalog.Create(def))...)
			g.PUT("/:id", append(admin, h.Catalog.Update(def))...)
			g.DELETE("/:id", append(admin, h.Catalog.Delete(def))...)
			g.DELETE("/:id/images", append(admin, h.Catalog.DeleteImage(def))...)
		}
	}

	// cart: anonymous via sessionId, authenticated via cookie
	cart := r.Group("/api/cart", h.Guard.Optional)
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/add", h.Cart.Add)
		cart.PUT("/update", h.Cart.UpdateQuantity)
		cart.DELETE("/remove/:productId", h.Cart.Remove)
		cart.DELETE("/clear", h.Cart.Clear)
		cart.GET("/ws", h.CartWS.Sync)
	}

	// lead capture: public submit, admin management
	installs := r.Group("/api/installation-requests")
	{
		installs.POST("", h.Leads.CreateInstallation)
		installs.GET("", append(admin, h.Leads.ListInstallations)...)
		installs.GET("/:id", append(admin, h.Leads.GetInstallation)...)
		installs.GET("/:id/pdf", append(admin, h.Leads.InstallationPDF)...)
		installs.PUT("/:id", append(admin, h.Leads.UpdateInstallation)...)
		installs.DELETE("/:id", append(admin, h.Leads.DeleteInstallation)...)
	}
	quotes := r.Group("/api/quote-requests")
	{
		quotes.POST("", h.Leads.CreateQuote)
		quotes.GET("", append(admin, h.Leads.ListQuotes)...)
		quotes.GET("/:id", append(admin, h.Leads.GetQuote)...)
		quotes.GET("/:id/pdf", append(admin, h.Leads.QuotePDF)...)
		quotes.PUT("/:id", append(admin, h.Leads.UpdateQuote)...)
		quotes.DELETE("/:id", append(admin, h.Leads.DeleteQuote)...)
	}

	// download center
	downloads := r.Group("/api/downloads")
	{
		downloads.GET("", h.Downloads.List)
		downloads.GET("/:id", h.Downloads.Get)
		downloads.GET("/:id/qr", h.Downloads.QR)
		downloads.PUT("/:id/increment", h.Downloads.Increment)
		downloads.POST("", append(admin, h.Downloads.Create)...)
		downloads.PUT("/:id", append(admin, h.Downloads.Update)...)
		downloads.DELETE("/:id", append(admin, h.Downloads.Delete)...)
	}

	// standalone uploads + the public file proxy
	upload := r.Group("/api/upload", admin...)
	{
		upload.POST("", h.Upload.Single)
		upload.POST("/multiple", h.Upload.Multiple)
		upload.DELETE("/:filename", h.Upload.Delete)
	}
	r.GET("/uploads/*filepath", h.Upload.Serve)
}
