package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodcalc/moodcalc/pkg/calcdir"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "init" {
		initCmd := flag.NewFlagSet("init", flag.ExitOnError)
		initCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: moodcalc init [flags]\n\nInitialize a .moodcalc directory with a config file.\n\nFlags:\n")
			initCmd.PrintDefaults()
		}
		dir := initCmd.String("moodcalc-dir", ".moodcalc", "path to .moodcalc directory")
		_ = initCmd.Parse(os.Args[2:])

		if err := runInit(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: moodcalc [flags]\n       moodcalc <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init    Initialize a .moodcalc directory with a config file\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: .moodcalc/config.yaml or moodcalc.yaml)")
	calcDir := flag.String("moodcalc-dir", ".moodcalc", "path to .moodcalc directory")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *calcDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runInit(dirPath string) error {
	configYAML, err := runWizard()
	if err != nil {
		return err
	}

	d := calcdir.New(dirPath)

	if err := calcdir.BootstrapWithConfig(d, configYAML); err != nil {
		return err
	}

	fmt.Printf("Initialized %s\n", d.Root())

	return nil
}

func run(configPath, calcDirPath string) error {
	resolved := resolveConfigPath(configPath, calcDirPath)

	cfg, err := LoadConfig(resolved)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newAppModel(cfg), tea.WithAltScreen())

	_, err = p.Run()
	return err
}
