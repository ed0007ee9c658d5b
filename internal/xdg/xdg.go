// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package xdg provides XDG Base Directory paths for MemberDash.
package xdg

import (
	"os"
	"path/filepath"
)

const (
	appName        = "memberdash"
	configFileName = "config.yaml"
)

// ConfigDir returns the XDG config directory for memberdash.
// Checks XDG_CONFIG_HOME first, falls back to ~/.config.
func ConfigDir(getenv func(string) string) string {
	base := getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// ConfigFile returns the path of config.yaml in ConfigDir if that file
// exists, or "" otherwise.
func ConfigFile(getenv func(string) string) string {
	path := filepath.Join(ConfigDir(getenv), configFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}
