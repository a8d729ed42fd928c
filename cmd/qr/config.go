package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/unixdj/qrbyte/coding"
)

type fileConfig struct {
	Format  string `toml:"format"`
	Margin  int    `toml:"margin"`
	Latin1  bool   `toml:"latin1"`
	Version int    `toml:"version"`
	GFTable string `toml:"gf_table"`
}

// configPath returns the default config file path.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qr", "config.toml"), nil
}

// loadConfig reads the file named by -c, or the default config file if
// it exists, and applies the settings for which isSet reports false.
func loadConfig(isSet func(rune) bool) error {
	if g.config != "" {
		return applyConfig(g.config, isSet)
	}
	path, err := configPath()
	if err != nil {
		logger.Debug("no config directory", "err", err)
		return nil
	}
	err = applyConfig(path, isSet)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func applyConfig(path string, isSet func(rune) bool) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if keys := meta.Undecoded(); len(keys) != 0 {
		return fmt.Errorf("load config: %s: unknown key %q", path, keys[0].String())
	}
	logger.Debug("loaded config", "file", path)

	if meta.IsDefined("format") && !isSet('t') {
		if !setFormat(strings.TrimSpace(raw.Format)) {
			return fmt.Errorf("load config: %s: bad format %q", path, raw.Format)
		}
		g.formatSet = true
	}
	if meta.IsDefined("margin") && !isSet('m') {
		if raw.Margin < 0 {
			return fmt.Errorf("load config: %s: negative margin %d", path, raw.Margin)
		}
		g.border = raw.Margin
	}
	if meta.IsDefined("latin1") && !isSet('1') {
		g.latin1 = raw.Latin1
	}
	if meta.IsDefined("version") && !isSet('v') {
		v := coding.Version(raw.Version)
		if v < coding.MinVersion || v > coding.MaxVersion {
			return fmt.Errorf("load config: %s: %w", path, coding.ErrVersion)
		}
		g.ver = v
	}
	if meta.IsDefined("gf_table") && !isSet('g') {
		g.gfTable = strings.TrimSpace(raw.GFTable)
	}
	return nil
}
