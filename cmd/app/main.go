package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"voyago/cmd/fx/catalog_fx"
	"voyago/cmd/fx/recommend_fx"
	"voyago/cmd/fx/session_fx"
	"voyago/cmd/fx/travel_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	app := fx.New(
		catalog_fx.Module,
		session_fx.Module,
		recommend_fx.Module,
		travel_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
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

func ProvideRouter(
	travelController *controllers.TravelController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, travelController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	travelController *controllers.TravelController,
	catalogController *controllers.CatalogController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/catalog", catalogController.Query)

	travelGroup := r.Group("/travel")
	travelGroup.Use(middleware.JWTAuthMiddleware())
	travelGroup.POST("/analyze", travelController.Analyze)
	travelGroup.POST("/answers", travelController.SubmitAnswers)
	travelGroup.POST("/recommendations", travelController.Recommend)
}
