// Package prebuilt unpacks prebuilt package archives (.tar.xz) into the
// package cache. Prebuilt packages, like the per-compiler picolibc builds,
// ship binaries instead of sources and skip the build step entirely.
package prebuilt

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/halpkg/halpkg/internal/env"
)

// Install extracts archive into the package folder for name/version/id and
// returns that folder.
func Install(archive, name, version, id string) (string, error) {
	dir, err := env.PackageDir(name, version, id)
	if err != nil {
		return "", err
	}
	if err := ExtractTo(archive, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// ExtractTo unpacks a .tar.xz archive into dir. Entries escaping dir
// (absolute paths or ".." components) are rejected.
func ExtractTo(archive, dir string) error {
	f, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer f.Close()

	xzReader, err := xz.NewReader(f)
	if err != nil {
		return fmt.Errorf("creating xz reader: %w", err)
	}
	tarReader := tar.NewReader(xzReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		name := strings.TrimPrefix(header.Name, "./")
		if name == "" || name == "." {
			continue
		}
		localized, err := filepath.Localize(name)
		if err != nil {
			return fmt.Errorf("unsafe path %q in archive", header.Name)
		}
		targetPath := filepath.Join(dir, localized)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}

		case tar.TypeSymlink:
			if filepath.IsAbs(header.Linkname) {
				return fmt.Errorf("unsafe symlink target %q in archive", header.Linkname)
			}
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}
			os.Remove(targetPath)
			if err := os.Symlink(header.Linkname, targetPath); err != nil {
				return fmt.Errorf("creating symlink %s: %w", targetPath, err)
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}
			if err := writeFile(targetPath, tarReader, os.FileMode(header.Mode)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(path string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
