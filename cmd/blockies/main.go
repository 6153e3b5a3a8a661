package main

import (
	"fmt"
	"log"
	"os"

	"blockies/internal/app"
	"blockies/internal/cli"
	_ "blockies/internal/encode/ansi"
	_ "blockies/internal/encode/json"
	_ "blockies/internal/encode/png"
	_ "blockies/internal/encode/svg"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	root := cli.NewRootCmd(os.Stdout, os.Stderr, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blockies:", err)
		os.Exit(1)
	}
}
