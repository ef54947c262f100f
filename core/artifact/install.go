package artifact

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// VersionMarker is the file written into the server directory recording the
// installed build. The original updater read the FileVersion resource of
// citizen-server-impl.dll, which only exists on Windows; the marker serves
// the same purpose portably.
const VersionMarker = ".artifact"

// InstalledVersion reads the version marker from a server directory.
// A missing or unreadable marker reports -1, the same as no install at all.
func InstalledVersion(dir string) int {
	b, err := os.ReadFile(filepath.Join(dir, VersionMarker))
	if err != nil {
		return -1
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return -1
	}

	return v
}

func writeMarker(dir string, version int) error {
	return os.WriteFile(filepath.Join(dir, VersionMarker), []byte(strconv.Itoa(version)+"\n"), 0o644)
}

// extract unpacks a zip archive into dir, creating it if needed.
func extract(zipPath, dir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, f := range r.File {
		if err := extractFile(f, dir); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}

	return nil
}

func extractFile(f *zip.File, dir string) error {
	target := filepath.Join(dir, filepath.FromSlash(f.Name))

	// Reject entries escaping the target directory.
	if rel, err := filepath.Rel(dir, target); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("illegal path %q", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}

	return dst.Close()
}
