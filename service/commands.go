package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"galleria/app/repositories"
	"galleria/config"
)

// HandleCommand runs a data or server subcommand and returns an exit code.
func HandleCommand(args []string) int {
	if len(args) < 1 {
		printHelp()
		osExit(1)
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		return RunAppServer(loadConfig())
	case "clean":
		return clean()
	case "init":
		return initStore()
	case "backup":
		return backup()
	case "restore":
		if len(args) < 2 {
			fmt.Fprintln(stdout, "Error: backup file path required for restore")
			osExit(1)
			return 1
		}
		return restore(args[1])
	case "help":
		printHelp()
		return 0
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n\n", cmd)
		printHelp()
		osExit(1)
		return 1
	}
}

// printHelp prints help for the subcommands.
func printHelp() {
	helpText := `Usage: galleria <command>

Commands:
  serve                           Run the gallery API
  clean                           Empty the gallery and product collections
  init                            Create empty collections
  backup                          Write both collections to a backup file
  restore [file]                  Replace both collections from a backup file
  help                            Display this help message
  version                         Show version information
`
	fmt.Fprintln(stdout, helpText)
}

// initStore creates the empty collections.
func initStore() int {
	cfg := loadConfig()
	path := dataPath(cfg)
	if storeExists(cfg) {
		fmt.Fprintln(stdout, "Data store already exists. Use 'clean' first if you want to reinitialize.")
		return 0
	}

	repo, err := openRepository(cfg)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to initialize data store: %v\n", err)
		return 1
	}
	defer repo.Close()

	fmt.Fprintf(stdout, "Data store initialized at %s\n", path)
	return 0
}

// clean empties both collections.
func clean() int {
	cfg := loadConfig()
	if !storeExists(cfg) {
		fmt.Fprintln(stdout, "Data store is already clean (does not exist)")
		return 0
	}

	if !confirm("Are you sure you want to delete every post, comment and product? This cannot be undone.") {
		fmt.Fprintln(stdout, "Operation cancelled")
		return 1
	}

	repo, err := openRepository(cfg)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to open data store: %v\n", err)
		return 1
	}
	defer repo.Close()

	if err := repo.Clear(); err != nil {
		fmt.Fprintf(stdout, "Failed to clean data store: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "Data store cleaned successfully")
	return 0
}

// backup writes a snapshot of both collections to the backup directory.
func backup() int {
	cfg := loadConfig()
	if !storeExists(cfg) {
		fmt.Fprintln(stdout, "No data store exists to backup")
		return 1
	}

	dir := backupDir(cfg)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(stdout, "Failed to create backup directory: %v\n", err)
		return 1
	}

	repo, err := openRepository(cfg)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to open data store: %v\n", err)
		return 1
	}
	defer repo.Close()

	snapshot, err := repo.Snapshot()
	if err != nil {
		fmt.Fprintf(stdout, "Failed to read data store: %v\n", err)
		return 1
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		fmt.Fprintf(stdout, "Failed to encode backup: %v\n", err)
		return 1
	}

	backupFile := filepath.Join(dir, fmt.Sprintf("backup_%d.json", time.Now().Unix()))
	if err := os.WriteFile(backupFile, data, 0644); err != nil {
		fmt.Fprintf(stdout, "Failed to write backup file: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Data store backed up successfully to %s (%d posts, %d products)\n",
		backupFile, len(snapshot.Gallery), len(snapshot.Products))
	return 0
}

// restore replaces both collections with the contents of a backup file.
func restore(backupFile string) int {
	data, err := os.ReadFile(backupFile)
	if os.IsNotExist(err) {
		fmt.Fprintf(stdout, "Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stdout, "Failed to read backup file: %v\n", err)
		return 1
	}
	if len(data) == 0 {
		fmt.Fprintf(stdout, "Backup file is empty: %s\n", backupFile)
		return 1
	}

	var snapshot repositories.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		fmt.Fprintf(stdout, "Backup file is not valid: %v\n", err)
		return 1
	}

	cfg := loadConfig()
	if storeExists(cfg) {
		if !confirm("Existing data found. Do you want to replace it?") {
			fmt.Fprintln(stdout, "Operation cancelled")
			return 1
		}
	}

	repo, err := openRepository(cfg)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to open data store: %v\n", err)
		return 1
	}
	defer repo.Close()

	if err := repo.Restore(&snapshot); err != nil {
		fmt.Fprintf(stdout, "Failed to restore data store: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Data store restored successfully (%d posts, %d products)\n",
		len(snapshot.Gallery), len(snapshot.Products))
	return 0
}

func storeExists(cfg *config.Config) bool {
	path := dataPath(cfg)
	if cfg.StorageBackend != repositories.BackendBadger {
		path = filepath.Join(path, repositories.GalleryFile)
	}
	_, err := os.Stat(path)
	return err == nil
}
