package metarename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/barasher/go-exiftool"
	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

// Watch renames candidate files as they appear under c.InDir, each handled
// exactly like a batch entry. It blocks until the watcher shuts down.
func Watch(c *Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	et, err := exiftool.NewExiftool()
	if err != nil {
		return fmt.Errorf("exiftool: %w", err)
	}
	defer et.Close()

	dirs := []string{c.InDir}
	if c.Recurse {
		dirs, err = findDirs(c.InDir)
		if err != nil {
			return fmt.Errorf("find dirs: %w", err)
		}
	}

	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	klog.Infof("watching %d dirs ...", len(dirs))
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			path := event.Name
			if filepath.Base(path)[0] == '.' || !mediaExts[strings.ToLower(filepath.Ext(path))] {
				continue
			}
			if fi, err := os.Stat(path); err != nil || fi.IsDir() {
				continue
			}

			if r := rename(c, path, et); r.Err != nil {
				klog.Errorf("%s: %v", path, r.Err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}
