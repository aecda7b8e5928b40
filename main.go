package main

import (
	"fmt"
	"os"
	"strings"

	"galleria/service"
)

const CliVersion = "1.0.0"

// Mock os.Exit to prevent test termination
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the command line to the matching subcommand.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("galleria version %s\n", CliVersion)
	case "serve", "init", "clean", "backup", "restore":
		exit(service.HandleCommand(append([]string{cmd}, os.Args[2:]...)))
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: galleria <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the gallery and product API.
  init                           Create the empty collections.
  clean                          Delete every post, comment and product.
  backup                         Write both collections to DATA_DIR/backups.
  restore <file>                 Replace both collections from a backup file.

Configuration is read from the environment or a .env file:
  PORT, DATA_DIR, STORAGE_BACKEND (json|badger), ZIPKIN_ADDRESS,
  METRICS_ENABLED, SHUTDOWN_TIMEOUT
`
	fmt.Println(helpText)
}
