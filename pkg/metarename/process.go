package metarename

import (
	"fmt"
	"os"

	"github.com/barasher/go-exiftool"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// A Result records the outcome for one file.
type Result struct {
	Source string
	Dest   string
	Err    error
}

// Failed returns the source paths of results that could not be renamed.
func Failed(rs []Result) []string {
	failed := []string{}
	for _, r := range rs {
		if r.Err != nil {
			failed = append(failed, r.Source)
		}
	}
	return failed
}

// Run processes every candidate file, one at a time: metadata is read, a
// name derived, and the configured operation performed (or printed in
// dry-run mode). A failure on one file does not stop the batch.
func Run(c *Config) ([]Result, error) {
	var files []string
	if c.File != "" {
		files = []string{c.File}
	} else {
		var err error
		files, err = Find(c.InDir, c.Recurse)
		if err != nil {
			return nil, fmt.Errorf("find: %w", err)
		}
	}

	klog.Infof("processing %d files", len(files))

	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	defer et.Close()

	var bar *progressbar.ProgressBar
	if len(files) > 1 && !c.DryRun {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("renaming"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([]Result, 0, len(files))
	for _, f := range files {
		results = append(results, rename(c, f, et))
		if bar != nil {
			bar.Add(1)
		}
	}

	return results, nil
}

// rename resolves a single file end to end.
func rename(c *Config, path string, et *exiftool.Exiftool) Result {
	r := Result{Source: path}

	md, err := read(path, et)
	if err != nil {
		r.Err = err
		return r
	}

	name, err := Derive(md)
	if err != nil {
		klog.Warningf("no name for %s: %v", path, err)
		r.Err = err
		return r
	}

	r.Dest = destPath(c, path, name)
	if r.Dest == path {
		klog.V(1).Infof("%s is already named", path)
		return r
	}

	if _, err := os.Stat(r.Dest); err == nil {
		klog.Warningf("%s exists, skipping %s", r.Dest, path)
		return r
	}

	if c.DryRun {
		fmt.Printf("%s -> %s\n", path, r.Dest)
		return r
	}

	if err := apply(c.Op, path, r.Dest); err != nil {
		r.Err = fmt.Errorf("%s: %w", c.Op, err)
		return r
	}

	klog.Infof("%s -> %s", path, r.Dest)
	return r
}
