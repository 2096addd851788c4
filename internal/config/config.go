package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	StripeSecretKey string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, reading configuration from environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "photography-contestDB"
	}

	return Config{
		Port:            port,
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         dbName,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}
