package config

import (
	"os"
	"path/filepath"
)

const configFileName = "warden.yaml"

// Discover locates the project and user config files, returning empty
// strings for whichever doesn't exist. projectRoot is the directory
// found by findProjectRoot; home is the user's home directory.
func Discover(projectRoot, home string) (projectPath, userPath string) {
	if projectRoot != "" {
		candidate := filepath.Join(projectRoot, ".claude", configFileName)
		if fileExists(candidate) {
			projectPath = candidate
		}
	}
	if home != "" {
		candidate := filepath.Join(home, ".claude", configFileName)
		if fileExists(candidate) {
			userPath = candidate
		}
	}
	return projectPath, userPath
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// FindProjectRoot walks up from cwd looking for an existing .claude/
// directory or a .git marker, exactly as the teacher's findProjectRoot
// does (generalized from its cc-allow-specific marker file to a plain
// directory/marker check, since this spec has no per-tool config
// marker file to look for first).
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		claudeDir := filepath.Join(dir, ".claude")
		if info, err := os.Stat(claudeDir); err == nil && info.IsDir() {
			return dir
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
