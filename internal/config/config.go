package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Analyzer AnalyzerConfig
	Scoring  ScoringConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	UploadPath     string
	MaxFileSize    int64
	ArchiveUploads bool
}

type AnalyzerConfig struct {
	// TopKeywords caps how many keywords are pulled from the job description.
	TopKeywords int
	// MinTokenLength drops tokens shorter than this. 3 means three-letter
	// tokens like "sql" survive.
	MinTokenLength int
	// MaxKeywordGaps caps each of the matched/missing lists.
	MaxKeywordGaps int
	// MatchPolicy is "substring" or "token".
	MatchPolicy string
	// SuggestionKeywordLimit caps how many missing keywords one suggestion names.
	SuggestionKeywordLimit int
	// MinMatchedThreshold triggers the low-match suggestion below this count.
	MinMatchedThreshold int
}

type ScoringConfig struct {
	// Policy is "coverage" or "blended".
	Policy string
	// CoverageWeight and SimilarityWeight blend keyword coverage with TF-IDF
	// cosine similarity when Policy is "blended". They should sum to 1.
	CoverageWeight   float64
	SimilarityWeight float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			UploadPath:     getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			ArchiveUploads: getEnvAsBool("ARCHIVE_UPLOADS", false),
		},
		Analyzer: AnalyzerConfig{
			TopKeywords:            getEnvAsInt("TOP_KEYWORDS", 40),
			MinTokenLength:         getEnvAsInt("MIN_TOKEN_LENGTH", 3),
			MaxKeywordGaps:         getEnvAsInt("MAX_KEYWORD_GAPS", 50),
			MatchPolicy:            getEnv("MATCH_POLICY", "substring"),
			SuggestionKeywordLimit: getEnvAsInt("SUGGESTION_KEYWORD_LIMIT", 10),
			MinMatchedThreshold:    getEnvAsInt("MIN_MATCHED_THRESHOLD", 10),
		},
		Scoring: ScoringConfig{
			Policy:           getEnv("SCORING_POLICY", "blended"),
			CoverageWeight:   getEnvAsFloat("COVERAGE_WEIGHT", 0.6),
			SimilarityWeight: getEnvAsFloat("SIMILARITY_WEIGHT", 0.4),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
