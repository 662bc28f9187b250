package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
	TaxRate float64
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shadeworks.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shadeworks.log"
	}
	taxRate := 0.07
	if s := os.Getenv("TAX_RATE"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 {
			taxRate = v
		}
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, TaxRate: taxRate}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s TAX_RATE=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.TaxRate)
	return cfg
}
