package config

import "os"

// Config collects every environment-backed setting so main can construct it
// once and hand pieces to each component.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	GeocodeAPIKey string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string
	AssetBaseURL   string
}

func Load() Config {
	return Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017/places"),
		DBName:    getenv("DB_NAME", "places"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret"),

		GeocodeAPIKey: os.Getenv("GOOGLE_API_KEY"),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:         getenv("MINIO_BUCKET", "place-images"),
		AssetBaseURL:   getenv("ASSET_BASE_URL", "http://localhost:9000/place-images"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
