package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads a .env file (if present) into the process environment and
// wires viper so the cmd layer can read overrides with viper.GetString et al.
func LoadConfig(path string) {
	envFile := filepath.Join(path, ".env")
	if err := godotenv.Load(envFile); err != nil {
		logrus.Debugf("[CONFIG] No .env file loaded from %s: %v", envFile, err)
	}
	viper.AutomaticEnv()
}
