package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripplanner/cmd/fx/account_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/notes_fx"
	"tripplanner/cmd/fx/profile_fx"
	"tripplanner/cmd/fx/trip_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		notes_fx.Module,
		profile_fx.Module,
		trip_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	accountController *controllers.AccountController,
	notesController *controllers.NotesController,
	profileController *controllers.ProfileController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, notesController, profileController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	notesController *controllers.NotesController,
	profileController *controllers.ProfileController,
	tripController *controllers.TripController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	notesGroup := r.Group("/notes", middleware.JWTAuthMiddleware())
	notesGroup.GET("", notesController.ListNotes)
	notesGroup.GET("/:id", notesController.GetNote)
	notesGroup.POST("", notesController.CreateNote)
	notesGroup.PUT("/:id", notesController.UpdateNote)
	notesGroup.DELETE("/:id", notesController.DeleteNote)

	profileGroup := r.Group("/profile", middleware.JWTAuthMiddleware())
	profileGroup.GET("", profileController.GetProfile)
	profileGroup.PUT("", profileController.UpsertProfile)

	tripGroup := r.Group("/trip")
	tripGroup.POST("/generate", middleware.JWTAuthMiddleware(), tripController.GenerateTrip)
	tripGroup.GET("/plan", middleware.OptionalJWTAuthMiddleware(), tripController.GetPlan)
}
