package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/vaughan0/go-ini"
)

// config holds runner settings. It is read from an ini file such as
//
//	[inputs]
//	dir = /home/me/advent/2020
//
// and ADVENT_INPUT_DIR (from the environment or a .env file) overrides dir.
type config struct {
	InputDir string
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".advent.ini")
}

// loadConfig reads the ini file at path. A missing file is not an error.
func loadConfig(path string) (*config, error) {
	var cfg config
	if path != "" {
		file, err := ini.LoadFile(path)
		switch {
		case err == nil:
			cfg.InputDir = file.Section("inputs")["dir"]
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("error loading config (%s): %s", path, err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %s", err)
	}
	if dir := os.Getenv("ADVENT_INPUT_DIR"); dir != "" {
		cfg.InputDir = dir
	}
	return &cfg, nil
}
