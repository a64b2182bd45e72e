package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/colour-mcp/internal/config"
	"github.com/ironsheep/colour-mcp/internal/preview"
	"github.com/ironsheep/colour-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = server.Version
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colour-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "preview":
			out, err := preview.Render(os.Args[2:])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Print(out)
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Debug {
		log.Printf("Colour MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("colour-mcp - MCP server for CSS colour manipulation")
	fmt.Println()
	fmt.Println("Usage: colour-mcp [options]")
	fmt.Println("       colour-mcp preview <colour>...")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  preview          Print colours as swatches in the terminal")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Printf("  %s=debug          Enable debug logging\n", config.EnvLogLevel)
	fmt.Printf("  %s=64            Default swatch cell size in pixels\n", config.EnvSwatchSize)
	fmt.Printf("  %s=50         Default colour_mix weight (0-100)\n", config.EnvDefaultWeight)
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
