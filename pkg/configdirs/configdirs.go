// Package configdirs builds the ordered list of places a command-line
// tool should look for its configuration, and the normal/.local file
// name pair to check at each place.
//
// A ConfigDirs accumulates directories (explicit paths, an ancestor
// walk, the platform config home, the current directory, /etc) and
// Search turns the accumulated list into a lazy walk of candidate
// paths. The package never touches the disk: checking which candidate
// actually exists is the caller's job.
package configdirs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"configfinder/pkg/platform"
)

// Segment is the conventional config subdirectory appended to explicit
// and ancestor-derived paths, so that passing a workspace root makes
// the search look under workspace/.config/<app>.
const Segment = ".config"

// ConfigDirs is an ordered, duplicate-free list of directories to
// search configs in. The zero value is not ready to use; construct
// with Empty or New.
type ConfigDirs struct {
	// paths hold the directories without the app subdirectory or
	// file name, in insertion order.
	paths []string

	// One flag per volatile location. They stop repeated environment
	// lookups; value-level dedup of the path list is separate, since
	// the same directory can also arrive through AddPath.
	addedCWD      bool
	addedPlatform bool
	addedEtc      bool

	info  platform.Info
	getwd func() (string, error)
}

// Empty returns an accumulator with no paths, resolving platform
// directories from the real operating environment.
func Empty() *ConfigDirs {
	return New(platform.Native{})
}

// New returns an empty accumulator resolving the platform config home
// through info.
func New(info platform.Info) *ConfigDirs {
	return &ConfigDirs{info: info, getwd: os.Getwd}
}

// AddPath adds path to the list of directories to check, if not
// previously added.
//
// The conventional Segment is appended unless path already ends with
// it, so both "workspace" and "workspace/.config" land on
// "workspace/.config" exactly once.
func (d *ConfigDirs) AddPath(path string) *ConfigDirs {
	d.addPath(path, true)
	return d
}

// AddAllPathsUntil adds start and every ancestor directory that is
// still inside container, container itself included, nearest first.
// Each added path gets the AddPath treatment.
//
// When start is not inside container at all, nothing is added.
func (d *ConfigDirs) AddAllPathsUntil(start, container string) *ConfigDirs {
	container = filepath.Clean(container)

	p := filepath.Clean(start)
	for hasPathPrefix(p, container) {
		d.addPath(p, true)
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	return d
}

// AddPlatformConfigDir adds the platform's config home.
//
// A trusted resolution (an explicit override, or the Windows roaming
// folder) is added as-is; the home-directory fallback gets the
// conventional Segment. The idempotency flag is only set on success:
// the environment can change between a failing call and a retry.
func (d *ConfigDirs) AddPlatformConfigDir() *ConfigDirs {
	if d.addedPlatform {
		return d
	}

	if dir, ok := d.info.ConfigHome(); ok {
		d.addPath(dir.Path, !dir.Trusted)
		d.addedPlatform = true
	}
	return d
}

// AddCurrentDir adds the process working directory, with AddPath
// treatment. The error comes straight from the working-directory
// lookup (for example when the directory has been deleted); the flag
// is not set in that case, so the call may be retried.
//
// Once it has succeeded, later calls are no-ops even if the working
// directory changes afterwards.
func (d *ConfigDirs) AddCurrentDir() error {
	if d.addedCWD {
		return nil
	}

	cwd, err := d.getwd()
	if err != nil {
		return err
	}
	d.addPath(cwd, true)
	d.addedCWD = true
	return nil
}

// Paths returns a copy of the directories added so far, in insertion
// order.
func (d *ConfigDirs) Paths() []string {
	return slices.Clone(d.paths)
}

// Search returns the walk of candidate configs named app/base.ext
// (and the .local variant) under every accumulated directory, in
// insertion order.
//
// An empty app or ext is valid: Search("", "my-app", "kdl") yields
// <dir>/my-app.kdl and Search("my-app", "main", "") yields
// <dir>/my-app/main. The directory list is snapshotted, so mutating
// the accumulator afterwards does not affect a live walk.
func (d *ConfigDirs) Search(app, base, ext string) *Candidates {
	return &Candidates{
		conf: NewWithLocal(filepath.Join(app, base), ext),
		dirs: slices.Clone(d.paths),
		back: len(d.paths),
	}
}

// addPath cleans path, appends Segment when asked for and not already
// the last element, and inserts the result unless present.
func (d *ConfigDirs) addPath(path string, withSegment bool) {
	p := filepath.Clean(path)
	if withSegment && filepath.Base(p) != Segment {
		p = filepath.Join(p, Segment)
	}

	if !slices.Contains(d.paths, p) {
		d.paths = append(d.paths, p)
	}
}

// hasPathPrefix reports whether prefix is a whole-component prefix of
// p. Both arguments must already be cleaned.
func hasPathPrefix(p, prefix string) bool {
	if p == prefix {
		return true
	}
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	sep := string(filepath.Separator)
	return strings.HasSuffix(prefix, sep) || strings.HasPrefix(p[len(prefix):], sep)
}
