package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host        string
		Port        int
		FrontendDir string
	}
	Auth struct {
		// BcryptCost applies wherever a hash is produced (the useradd
		// tool, test fixtures). Verification reads the cost from the
		// stored hash itself.
		BcryptCost int
	}
	Debug struct {
		LogQueries bool
	}
}
