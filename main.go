package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"kindred_server/config"
	"kindred_server/middleware"
	"kindred_server/routes"
	"kindred_server/services"
	"kindred_server/socket"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Loading AWS configuration...")
	awsCfg, err := services.LoadAWSConfig(context.Background(), cfg.AWSRegion)
	if err != nil {
		log.Fatalf("%v", err)
	}

	dynamoService := &services.DynamoService{Client: dynamodb.NewFromConfig(awsCfg)}

	// Initialize services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	pairService := &services.PairService{Dynamo: dynamoService}
	matchService := &services.MatchService{Profiles: userProfileService, Pairs: pairService}
	chatService := &services.ChatService{Dynamo: dynamoService, Pairs: pairService}
	mediaService := services.NewMediaService(s3.NewFromConfig(awsCfg), cfg.S3Bucket)

	auth := middleware.NewAuth(cfg.JWTSecret)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Kindred")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, auth, userProfileService)
	routes.RegisterMatchRoutes(r, auth, matchService)
	routes.RegisterChatRoutes(r, auth, chatService)
	routes.RegisterMediaRoutes(r, auth, mediaService)

	// Socket.IO chat relay
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
