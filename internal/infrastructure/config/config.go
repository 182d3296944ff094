package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"

	"github.com/campushire/career-registry/internal/infrastructure/persistence/jsonfile"
)

type Config struct {
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Data DataConfig
}

type DataConfig struct {
	// Dir holds the six record batch files.
	Dir string `env:"DATA_DIR, default=./data"`

	AdminsFile     string `env:"ADMINS_FILE,     default=admins.json"`
	StudentsFile   string `env:"STUDENTS_FILE,   default=students.json"`
	EmployersFile  string `env:"EMPLOYERS_FILE,  default=employers.json"`
	ProfessorsFile string `env:"PROFESSORS_FILE, default=professors.json"`
	ReviewsFile    string `env:"REVIEWS_FILE,    default=reviews.json"`
	PostingsFile   string `env:"POSTINGS_FILE,   default=postings.json"`

	// StrictResolve makes any dangling reference fatal at load.
	StrictResolve bool `env:"STRICT_RESOLVE, default=false"`
}

// Paths resolves the configured file names against the data directory.
func (d DataConfig) Paths() jsonfile.Paths {
	return jsonfile.Paths{
		Admins:     filepath.Join(d.Dir, d.AdminsFile),
		Students:   filepath.Join(d.Dir, d.StudentsFile),
		Employers:  filepath.Join(d.Dir, d.EmployersFile),
		Professors: filepath.Join(d.Dir, d.ProfessorsFile),
		Reviews:    filepath.Join(d.Dir, d.ReviewsFile),
		Postings:   filepath.Join(d.Dir, d.PostingsFile),
	}
}

// Load reads configuration from the environment using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
