package geonorm

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/barasher/go-exiftool"
	"github.com/karrick/godirwalk"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

// imageExts are the extensions eligible for renaming. Matching is
// case-sensitive: the capture pipeline only ever produces these six.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".JPG":  true,
	".JPEG": true,
	".PNG":  true,
}

// Run walks c.Root and renames (or, in preview mode, reports) every image
// whose name matches a known dataset convention. A single file's problem
// never aborts the pass; only a missing root does.
func Run(c *Config) (*Stats, error) {
	if _, err := os.Stat(c.Root); err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	var et *exiftool.Exiftool
	if c.VerifyGPS {
		var err error
		et, err = exiftool.NewExiftool()
		if err != nil {
			return nil, fmt.Errorf("exiftool: %w", err)
		}
		defer et.Close()
	}

	mode := "execute"
	if c.DryRun {
		mode = "preview"
	}
	klog.Infof("scanning %s (%s mode)", c.Root, mode)

	st := &Stats{}
	// destination -> source that claimed it within this pass, so preview
	// and execute report collisions identically
	claimed := map[string]string{}

	err := godirwalk.Walk(c.Root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if !imageExts[filepath.Ext(path)] {
				return nil
			}

			st.Total++

			p, ok := Parse(filepath.Base(path))
			if !ok {
				klog.Infof("skipping %s: unrecognized name", path)
				st.Skipped++
				return nil
			}

			if c.Decode {
				if err := decodable(path); err != nil {
					klog.Infof("skipping %s: %v", path, err)
					st.Skipped++
					return nil
				}
			}

			if et != nil {
				verifyGPS(et, path, p)
			}

			rel, err := filepath.Rel(c.Root, path)
			if err != nil {
				return err
			}

			newName := NewName(p, c.Status == "success")
			dest := destPath(c, path, rel, newName)

			if owner, taken := claimed[dest]; taken && owner != path {
				klog.Infof("skipping %s: %s already claimed by %s", path, newName, owner)
				st.Skipped++
				return nil
			}
			if _, err := os.Lstat(dest); err == nil && dest != path {
				klog.Infof("skipping %s: %s already exists", path, newName)
				st.Skipped++
				return nil
			}
			claimed[dest] = path

			kind := "reference"
			if p.Query {
				kind = "query"
			}
			klog.Infof("%s -> %s (%v, %v) [%s]", rel, newName, p.Lat, p.Lon, kind)

			if c.DryRun {
				st.Renamed++
				return nil
			}

			if err := place(c, path, dest); err != nil {
				klog.Errorf("rename %s: %v", path, err)
				st.Skipped++
				return nil
			}
			st.Renamed++
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	klog.Infof("done: %d seen, %d renamed, %d skipped", st.Total, st.Renamed, st.Skipped)
	return st, nil
}

// destPath computes where path's renamed form should land: next to the
// source, or under c.OutDir with the subtree layout preserved.
func destPath(c *Config, path string, rel string, newName string) string {
	if c.OutDir == "" {
		return filepath.Join(filepath.Dir(path), newName)
	}
	return filepath.Join(c.OutDir, filepath.Dir(rel), newName)
}

// place moves (or, in export mode, copies) src to dest.
func place(c *Config, src string, dest string) error {
	if c.OutDir == "" {
		return os.Rename(src, dest)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := copy.Copy(src, dest); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}
