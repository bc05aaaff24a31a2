package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"wakeup-route-service/internal/adapters/cache"
	"wakeup-route-service/internal/adapters/geocode"
	"wakeup-route-service/internal/adapters/route"
	"wakeup-route-service/internal/adapters/weather"
	"wakeup-route-service/internal/api"
	"wakeup-route-service/internal/domain"
	"wakeup-route-service/internal/platform/db"
	"wakeup-route-service/internal/ports"
	"wakeup-route-service/internal/services"
)

const (
	geocodeCacheTTL   = 5 * time.Minute
	geocodeCacheLimit = 10_000
	routeCacheTTL     = 5 * time.Minute
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, ORS, OSRM, cache backends) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")

	// A missing ORS key is a handled state: the primary provider then
	// delegates straight to the basic fallback.
	orsKey := os.Getenv("ORS_API_KEY")
	if orsKey == "" {
		log.Println("ORS_API_KEY not set; primary routing disabled")
	}

	nominatim := geocode.NewNominatimClient(os.Getenv("NOMINATIM_BASE_URL"))
	geocoder := services.NewCachingGeocoder(buildGeocodeCache(), nominatim)

	basic := route.NewBasicEstimator(
		os.Getenv("OSRM_FALLBACK_BASE_URL"),
		cache.NewTimedCache[domain.RouteEstimate](routeCacheTTL, 0),
	)
	primary := route.NewORSEstimator(orsKey, basic)
	secondary := route.NewOSRMEstimator(os.Getenv("OSRM_BASE_URL"))
	eta := services.NewETAService(primary, secondary, basic)

	var weatherProvider ports.WeatherProvider
	if owmKey := os.Getenv("OWM_API_KEY"); owmKey != "" {
		weatherProvider = weather.NewOpenWeatherMapProvider(owmKey, os.Getenv("OWM_BASE_URL"))
	} else {
		log.Println("OWM_API_KEY not set; weather adjustment disabled")
	}

	router := api.NewRouter(geocoder, nominatim, eta, weatherProvider, time.Now)

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

// buildGeocodeCache picks the cache backend: Postgres, then Redis, then
// in-memory.
func buildGeocodeCache() ports.GeocodeCache {
	if dbURL := os.Getenv("PLANNER_DATABASE_URL"); dbURL != "" {
		pg, err := db.Open(dbURL)
		if err != nil {
			log.Fatal(err)
		}

		if err := cache.InitSchema(context.Background(), pg); err != nil {
			log.Fatal(err)
		}

		log.Println("geocode cache backend: postgres")
		return cache.NewSQLGeocodeCache(pg, geocodeCacheTTL)
	}

	if addr := os.Getenv("PLANNER_REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal(err)
		}

		log.Println("geocode cache backend: redis")
		return cache.NewRedisGeocodeCache(client, geocodeCacheTTL)
	}

	log.Println("geocode cache backend: memory")
	return cache.NewMemoryGeocodeCache(geocodeCacheTTL, geocodeCacheLimit)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
