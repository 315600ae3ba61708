package config

import (
	"os"
	"strconv"
)

type Config struct {
	GraphBaseURL string
	GraphAPIKey  string
	MongoURI     string
	RedisAddr    string
	HTTPPort     string
	DatasetDir   string
	RefLang      string

	MaxDepth      int
	MaxItems      int
	FilterWorkers int
}

func Load() *Config {
	return &Config{
		GraphBaseURL: getEnv("GRAPH_BASE_URL", "https://lexgraph.example.com/v1"),
		GraphAPIKey:  os.Getenv("GRAPH_API_KEY"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatasetDir:   getEnv("DATASET_DIR", "generated"),
		RefLang:      getEnv("REF_LANG", "en"),

		MaxDepth:      getEnvInt("CRAWL_MAX_DEPTH", 5),
		MaxItems:      getEnvInt("CRAWL_MAX_ITEMS", 10),
		FilterWorkers: getEnvInt("FILTER_WORKERS", 10),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
