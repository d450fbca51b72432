package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ayjmax/cuckooset/internal/stress"
)

func main() {
	var configPath string

	flag.StringVar(&configPath, "config", "", "Path to configuration file (optional)")
	flag.Parse()

	if err := run(configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	c, err := stress.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	runner, err := stress.NewRunner(c)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	res, err := runner.Run(context.Background())
	if err != nil {
		return fmt.Errorf("run scenario: %w", err)
	}

	verifyErr := stress.Verify(runner.Set(), res)
	stress.WriteReport(os.Stdout, c, res, verifyErr)
	if verifyErr != nil {
		return fmt.Errorf("verify run: %w", verifyErr)
	}

	return nil
}
