package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPass     string
	SecretKey     string
	SessionSecret string
	HTTPPort      string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:  getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "tranquilitea"),
		SecretKey: getEnv("SECRET_KEY", "super-secret"),
		HTTPPort:  getEnv("PORT", "3000"),

		// Redis es opcional: sin REDIS_ADDR el cache queda deshabilitado.
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		// Se lee por compatibilidad con despliegues viejos; ninguna ruta
		// usa sesiones de servidor.
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}
