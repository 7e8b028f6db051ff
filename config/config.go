package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
)

// Environment keys recognized by Load.
const (
	envDocFolderID  = "GOOGLE_DRIVE_DOC_FOLDER_ID"
	envCodeFolderID = "GOOGLE_DRIVE_CODE_FOLDER_ID"
	envProjectName  = "PROJECT_NAME"
	envS3AccessKey  = "S3_ACCESS_KEY"
	envS3SecretKey  = "S3_SECRET_KEY"
	envS3Bucket     = "S3_BUCKET"
	envS3Region     = "S3_REGION"
)

// defaultS3Region is used when S3_REGION is not set.
const defaultS3Region = "us-east-1"

// Config holds the environment-provided settings for one run.
type Config struct {
	DocFolderID  string
	CodeFolderID string
	ProjectName  string
	S3AccessKey  string
	S3SecretKey  string
	S3Bucket     string
	S3Region     string
}

// Load reads the configuration from the environment, sourcing a .env file
// from the working directory first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		DocFolderID:  os.Getenv(envDocFolderID),
		CodeFolderID: os.Getenv(envCodeFolderID),
		ProjectName:  os.Getenv(envProjectName),
		S3AccessKey:  os.Getenv(envS3AccessKey),
		S3SecretKey:  os.Getenv(envS3SecretKey),
		S3Bucket:     os.Getenv(envS3Bucket),
		S3Region:     os.Getenv(envS3Region),
	}
	if cfg.S3Region == "" {
		cfg.S3Region = defaultS3Region
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	required := []struct {
		key   string
		value string
	}{
		{envDocFolderID, cfg.DocFolderID},
		{envCodeFolderID, cfg.CodeFolderID},
		{envProjectName, cfg.ProjectName},
		{envS3AccessKey, cfg.S3AccessKey},
		{envS3SecretKey, cfg.S3SecretKey},
		{envS3Bucket, cfg.S3Bucket},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required (set it in the environment or a .env file)", r.key)
		}
	}
	return nil
}
