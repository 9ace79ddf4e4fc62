package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dreamtrip/cmd/fx/controllers_fx"
	"dreamtrip/cmd/fx/db_fx"
	"dreamtrip/cmd/fx/kafka_fx"
	"dreamtrip/cmd/fx/providers_fx"
	"dreamtrip/cmd/fx/redis_fx"
	"dreamtrip/cmd/fx/trip_fx"
	"dreamtrip/internal/api/controllers"
	"dreamtrip/internal/events"
	"dreamtrip/internal/infra"
	"dreamtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		kafka_fx.Module,
		providers_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(RegisterShutdown),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func RegisterShutdown(lc fx.Lifecycle, db *gorm.DB, redisClient *redis.Client, notifier *events.KafkaNotifier) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			notifier.Close()
			infra.CloseRedis(redisClient)
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	healthController *controllers.HealthController) {

	api := r.Group("/api")
	api.POST("/trip/plan", tripController.CreateTripPlan)
	api.GET("/trip/:tripId", tripController.GetTripPlan)
	api.GET("/trips", tripController.GetUserTrips)

	r.GET("/health", healthController.Health)
	r.GET("/health/services", healthController.ServicesHealth)
}
