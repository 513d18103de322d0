package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection        *mongo.Collection
	TripsCollection       *mongo.Collection
	TripDetailsCollection *mongo.Collection
	InvitationsCollection *mongo.Collection
	ItineraryCollection   *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ClientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("voyagodb").Collection("users")
	TripsCollection = Client.Database("voyagodb").Collection("trips")
	TripDetailsCollection = Client.Database("voyagodb").Collection("tripDetails")
	InvitationsCollection = Client.Database("voyagodb").Collection("invitations")
	ItineraryCollection = Client.Database("voyagodb").Collection("itinerary")
}
