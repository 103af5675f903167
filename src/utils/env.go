package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// InitEnvironmentVariables loads the .env file at envPath without
// overriding variables already present in the environment. A missing file
// is not an error.
func InitEnvironmentVariables(envPath string) error {
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		log.Debugf("InitEnvironmentVariables: no env file at %s", envPath)
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("InitEnvironmentVariables: failed to load %s: %w", envPath, err)
	}

	log.Infof("InitEnvironmentVariables: loaded %s", envPath)

	return nil
}
