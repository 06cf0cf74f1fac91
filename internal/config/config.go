package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	MatchWorkers int    // parallel candidate generation
	CategoryTag  string // marker of model records in primaryId
	Dedupe       bool   // collapse duplicate customer rows
	SisterBrands bool   // report codes of sister brands too
}

// Load reads the environment, after an optional .env in the working directory.
func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	workers, err := strconv.Atoi(getenv("MATCH_WORKERS", strconv.Itoa(runtime.NumCPU())))
	if err != nil || workers < 1 {
		workers = 1
	}
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/catalog-recon.log"),
		MatchWorkers: workers,
		CategoryTag:  getenv("CATEGORY_TAG", "PT_CAT"),
		Dedupe:       getbool("MATCH_DEDUPE", true),
		SisterBrands: getbool("MATCH_SISTER_BRANDS", false),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v, err := strconv.ParseBool(getenv(k, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}
