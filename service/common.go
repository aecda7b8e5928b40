package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"galleria/app/repositories"
	"galleria/config"
)

// Swappable for tests
var (
	osExit               = os.Exit
	stdin      io.Reader = os.Stdin
	stdout     io.Writer = os.Stdout
	loadConfig           = func() *config.Config { return config.Load() }
)

// dataPath is where the backend keeps its data: the JSON documents live
// directly in DATA_DIR, badger gets its own subdirectory.
func dataPath(cfg *config.Config) string {
	if cfg.StorageBackend == repositories.BackendBadger {
		return filepath.Join(cfg.DataDir, "badger")
	}
	return cfg.DataDir
}

func backupDir(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "backups")
}

func openRepository(cfg *config.Config) (*repositories.Repository, error) {
	return repositories.NewRepository(cfg.StorageBackend, dataPath(cfg))
}

// confirm asks a yes/no question on stdout and reads the answer from stdin
func confirm(question string) bool {
	fmt.Fprintf(stdout, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}
