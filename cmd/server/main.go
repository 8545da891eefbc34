package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"karthika_back_end/internal/cart"
	"karthika_back_end/internal/config"
	"karthika_back_end/internal/database"
	"karthika_back_end/internal/handlers"
	"karthika_back_end/internal/middleware"
	"karthika_back_end/internal/repository"
	"karthika_back_end/internal/routes"
	"karthika_back_end/internal/services"
)

func main() {
	config.Load()

	ctx := context.Background()
	clients, err := database.Connect(ctx)
	if err != nil {
		log.Fatal("❌ Datastore initialization failed: ", err)
	}
	defer clients.Close()

	catalogSession, err := clients.Scylla.Session(database.KeyspaceCatalog)
	if err != nil {
		log.Fatal("❌ Catalog keyspace unavailable: ", err)
	}
	usersSession, err := clients.Scylla.Session(database.KeyspaceUsers)
	if err != nil {
		log.Fatal("❌ Users keyspace unavailable: ", err)
	}
	leadsSession, err := clients.Scylla.Session(database.KeyspaceLeads)
	if err != nil {
		log.Fatal("❌ Leads keyspace unavailable: ", err)
	}

	products := repository.NewProducts(catalogSession)
	users := repository.NewUsers(usersSession)
	leads := repository.NewLeads(leadsSession)
	downloads := repository.NewDownloads(catalogSession)

	storage := services.NewStorage(clients.MinIO, config.Getenv("MINIO_BUCKET", "karthika-uploads"))
	search := services.NewSearch(clients.Elastic)
	mailer := services.NewMailer()
	cartStore := cart.NewStore(clients.Redis)

	handlers.InitOAuth()

	guard := middleware.NewAuth(users)

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = 16 << 20

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:5173",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	if clientURL := config.Getenv("CLIENT_URL", ""); clientURL != "" {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, clientURL)
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	routes.Register(r, &routes.Handlers{
		Auth:      handlers.NewAuthHandler(users),
		OAuth:     handlers.NewOAuthHandler(users),
		Catalog:   handlers.NewCatalogHandler(products, storage, search, clients.Redis),
		Cart:      handlers.NewCartHandler(cartStore),
		CartWS:    handlers.NewCartSocketHandler(cartStore),
		Leads:     handlers.NewLeadsHandler(leads, mailer),
		Downloads: handlers.NewDownloadsHandler(downloads, storage),
		Upload:    handlers.NewUploadHandler(storage),
		Guard:     guard,
	})

	port := config.Getenv("PORT", "5000")
	log.Println("🚀 Server running on port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped: ", err)
	}
}
