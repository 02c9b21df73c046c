package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeding settings.
type Config struct {
	// Reset clears comments, issues and users before seeding.
	Reset bool `yaml:"reset" env:"SEED_RESET"`
	// MaxCommentsPerIssue caps the generated comments; each issue gets 1..Max.
	MaxCommentsPerIssue int `yaml:"max_comments_per_issue" env:"SEED_MAX_COMMENTS" env-default:"3"`
}

// LoadConfig reads seeding configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
