package env

import (
	"os"
	"path/filepath"
)

func WorkDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userCacheDir, ".halpkg"), nil
}

// PackageDir returns the folder a built package is installed into, keyed
// by name, version and package identity hash. The directory is created if
// missing.
func PackageDir(name, version, id string) (string, error) {
	workDir, err := WorkDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(workDir, "packages", name, version, id)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
