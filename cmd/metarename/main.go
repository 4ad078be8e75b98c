// metarename renames photo and video files based on their embedded metadata.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"k8s.io/klog/v2"

	metarename "metarename/pkg/metarename"
)

var (
	inDir     = flag.String("in", "", "directory containing files to rename")
	file      = flag.String("file", "", "rename a single file instead of a directory")
	outDir    = flag.String("out", "", "destination directory (default: rename in place)")
	recurse   = flag.Bool("r", false, "recurse into subdirectories")
	dryRun    = flag.Bool("n", false, "dry-run mode, don't move things")
	keepTree  = flag.Bool("keep-tree", false, "preserve the source directory layout under -out")
	op        = flag.String("op", "move", "file operation: move, copy or symlink")
	watchFlag = flag.Bool("watch", false, "watch -in for new files and rename them as they arrive")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] (-in <dir> | -file <path>)\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	c, err := config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		usage()
	}

	if *watchFlag {
		if err := metarename.Watch(c); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
		return
	}

	rs, err := metarename.Run(c)
	if err != nil {
		klog.Exitf("run failed: %v", err)
	}

	failed := metarename.Failed(rs)
	if len(failed) > 0 {
		color.New(color.FgRed).Fprintf(os.Stderr, "failed to rename %d of %d files:\n", len(failed), len(rs))
		fmt.Fprintln(os.Stderr, strings.Join(failed, "\n"))
		os.Exit(1)
	}
}

// config validates flags into a Config. All conflicts are rejected here,
// before any file is touched.
func config() (*metarename.Config, error) {
	c := &metarename.Config{
		InDir:    *inDir,
		File:     *file,
		OutDir:   *outDir,
		Recurse:  *recurse,
		KeepTree: *keepTree,
		DryRun:   *dryRun,
	}

	var err error
	c.Op, err = metarename.ParseOp(*op)
	if err != nil {
		return nil, err
	}

	switch {
	case c.InDir == "" && c.File == "":
		return nil, errors.New("one of -in or -file is required")
	case c.InDir != "" && c.File != "":
		return nil, errors.New("-in and -file are mutually exclusive")
	case c.File != "" && (c.Recurse || c.KeepTree || *watchFlag):
		return nil, errors.New("-r, -keep-tree and -watch require -in")
	case c.KeepTree && c.OutDir == "":
		return nil, errors.New("-keep-tree requires -out")
	}

	if c.InDir != "" {
		fi, err := os.Stat(c.InDir)
		if err != nil {
			return nil, fmt.Errorf("stat -in: %w", err)
		}
		if !fi.IsDir() {
			return nil, fmt.Errorf("-in %q is not a directory", c.InDir)
		}
	}

	if c.File != "" {
		fi, err := os.Stat(c.File)
		if err != nil {
			return nil, fmt.Errorf("stat -file: %w", err)
		}
		if fi.IsDir() {
			return nil, fmt.Errorf("-file %q is a directory", c.File)
		}
	}

	return c, nil
}
