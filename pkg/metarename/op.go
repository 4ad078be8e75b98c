package metarename

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// destPath returns where the derived name should land for a given source
// file: next to the source by default, flat under OutDir when set, or under
// the source-relative subtree of OutDir in keep-tree mode.
func destPath(c *Config, src string, name string) string {
	dir := filepath.Dir(src)

	if c.OutDir != "" {
		dir = c.OutDir
		if c.KeepTree {
			rel, err := filepath.Rel(c.InDir, filepath.Dir(src))
			if err == nil && rel != "." {
				dir = filepath.Join(c.OutDir, rel)
			}
		}
	}

	return filepath.Join(dir, name)
}

// apply performs the configured file operation, creating destination
// directories as needed.
func apply(op Op, src string, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	switch op {
	case Move:
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("rename: %w", err)
		}
	case Copy:
		if err := copy.Copy(src, dst); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
	case Symlink:
		abs, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("abs: %w", err)
		}
		if err := os.Symlink(abs, dst); err != nil {
			return fmt.Errorf("symlink: %w", err)
		}
	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	return nil
}
