package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	hilowcmd "github.com/louisbranch/hilow/internal/cmd/hilow"
	"github.com/louisbranch/hilow/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := hilowcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := hilowcmd.Run(cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("run game: %v", err)
	}
}
