// geonorm normalizes the filenames of cross-view geo-localization images
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"k8s.io/klog/v2"

	"github.com/fsnotify/fsnotify"
	geonorm "github.com/geonorm/geonorm/pkg/geonorm"
)

var (
	root      = flag.String("root", "demo-img", "directory tree to scan")
	status    = flag.String("status", "success", "status tag to embed in new names: success or failure")
	outDir    = flag.String("out", "", "copy matches into this tree instead of renaming in place")
	validate  = flag.Bool("validate", false, "decode each image first and skip ones that fail")
	verifyGPS = flag.Bool("verify-gps", false, "warn when EXIF GPS tags disagree with the filename")
	watchFlag = flag.Bool("watch", false, "keep watching for new files after the initial pass")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	dryRun := flag.Arg(0) != "run"

	if *status != "success" && *status != "failure" {
		klog.Exitf("--status must be success or failure, got %q", *status)
	}

	if *watchFlag && dryRun {
		klog.Exitf("--watch requires the %q argument", "run")
	}

	c := &geonorm.Config{
		Root:      *root,
		OutDir:    *outDir,
		DryRun:    dryRun,
		Status:    *status,
		Decode:    *validate,
		VerifyGPS: *verifyGPS,
	}

	st, err := geonorm.Run(c)
	if err != nil {
		klog.Exitf("run failed: %v", err)
	}

	if dryRun && st.Renamed > 0 {
		klog.Infof("preview only; re-run with the %q argument to apply", "run")
	}

	if *watchFlag {
		if err := watch(c); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
	}
}

// watch re-runs the pass whenever something new lands in the tree.
func watch(c *geonorm.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	dirs := []string{}
	err = filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk: %w", err)
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
			// our own renames fire Create events too
			if strings.HasPrefix(filepath.Base(event.Name), "_") {
				continue
			}

			if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
				if err := w.Add(event.Name); err != nil {
					klog.Errorf("watch %s: %v", event.Name, err)
				}
			}

			st, err := geonorm.Run(c)
			if err != nil {
				klog.Errorf("pass failed: %v", err)
				continue
			}
			klog.Infof("pass: %d renamed, %d skipped", st.Renamed, st.Skipped)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}
