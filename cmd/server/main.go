package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/adapters/cache"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/adapters/mapbox"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/adapters/repositories"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/api"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/config"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/platform/db"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/ports"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Mapbox) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Schema init is idempotent; running it on startup keeps local runs simple.
	if err := repositories.InitSchema(pg); err != nil {
		log.Fatal(err)
	}

	// A missing token disables geocoding/routing (every quote falls back to
	// "unresolved"); it must not prevent cache administration from working.
	client := mapbox.NewClient(os.Getenv("MAPBOX_TOKEN"))

	// REDIS_ADDR selects the Redis cache; default is the Postgres cache.
	var distanceCache ports.DistanceCache = cache.NewSQLDistanceCache(pg)
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		distanceCache = cache.NewRedisDistanceCache(rdb)
		log.Printf("Using redis distance cache addr=%s", addr)
	}

	svc := services.NewQuoteService(
		mapbox.NewGeocoder(client),
		mapbox.NewRouter(client),
		distanceCache,
		repositories.NewSQLPricingRepository(pg),
	)

	router := api.NewRouter(svc)

	// Write timeout covers two geocode calls plus one directions call on a
	// cold cache, each bounded at 10s.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
