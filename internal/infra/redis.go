package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

func InitRedis() *redis.Client {

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379"
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Error parsing REDIS_URL: %v", err)
		log.Fatal("Error connecting to Redis")
	}

	return redis.NewClient(opts)
}

func CloseRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	} else {
		log.Println("Redis connection closed successfully")
	}
}
