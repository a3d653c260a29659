package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fbdash config <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  validate    Validate the configuration")
	fmt.Fprintln(w, "  print       Print the effective configuration as YAML")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "validate":
		return runConfigValidate(args[1:])
	case "print":
		return runConfigPrint(args[1:])
	case "help", "-h", "--help":
		printConfigUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n\n", args[0])
		printConfigUsage(os.Stderr)
		return 2
	}
}

func runConfigValidate(args []string) int {
	fs := flag.NewFlagSet("config validate", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file path (default: ~/.config/fbdash/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if _, err := loadConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		return 1
	}
	fmt.Println("OK")
	return 0
}

func runConfigPrint(args []string) int {
	fs := flag.NewFlagSet("config print", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file path (default: ~/.config/fbdash/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal config: %v\n", err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}
