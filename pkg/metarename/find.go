package metarename

import (
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// mediaExts are the extensions considered candidates for renaming.
var mediaExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".tif":  true,
	".tiff": true,
	".dng":  true,
	".cr2":  true,
	".cr3":  true,
	".nef":  true,
	".arw":  true,
	".orf":  true,
	".raf":  true,
	".rw2":  true,
	".mov":  true,
	".mp4":  true,
	".m4v":  true,
	".avi":  true,
}

// Find returns the candidate media files under root in lexical order.
// Dotfiles are skipped; without recurse, subdirectories are not descended
// into.
func Find(root string, recurse bool) ([]string, error) {
	found := []string{}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if path != root && filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}

			if de.IsDir() {
				if !recurse && path != root {
					return godirwalk.SkipThis
				}
				return nil
			}

			if !mediaExts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			klog.V(1).Infof("found %s", path)
			found = append(found, path)
			return nil
		},
	})

	return found, err
}

// findDirs returns root and every non-hidden directory below it.
func findDirs(root string) ([]string, error) {
	dirs := []string{}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if path != root && filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}
			if de.IsDir() {
				dirs = append(dirs, path)
			}
			return nil
		},
	})

	return dirs, err
}
