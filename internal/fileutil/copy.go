package fileutil

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyStats counts what CopyDir copied.
type CopyStats struct {
	Files int
	Bytes int64
}

// CopyDir recursively copies the regular files under src into dst, creating
// directories as needed. Symlinks and other special files are skipped.
// Existing files in dst are overwritten. When dst lies inside src it is left
// out of the walk, so the copy never reads its own output.
func CopyDir(ctx context.Context, src, dst string) (CopyStats, error) {
	var stats CopyStats

	info, err := os.Stat(src)
	if err != nil {
		return stats, fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return stats, fmt.Errorf("resolving %s: %w", src, err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return stats, fmt.Errorf("resolving %s: %w", dst, err)
	}
	nestedDst := absDst != absSrc && IsWithin(absSrc, absDst)

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			if nestedDst && path != src {
				if abs, err := filepath.Abs(path); err == nil && IsWithin(absDst, abs) {
					return filepath.SkipDir
				}
			}
			return os.MkdirAll(target, 0o755)
		case d.Type().IsRegular():
			n, err := copyFile(path, target)
			if err != nil {
				return err
			}
			stats.Files++
			stats.Bytes += n
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("copying %s: %w", src, err)
	}
	return stats, nil
}

// copyFile copies one regular file, keeping its permission bits.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src) // #nosec G304 -- walking a user-provided directory
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) // #nosec G304
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return n, err
}
