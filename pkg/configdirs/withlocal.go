package configdirs

import "path/filepath"

// WithLocal stores both the normal and the local form of a
// configuration path. The local form has ".local" inserted just
// before the extension: "cli-app.kdl" has the local form
// "cli-app.local.kdl". The local file is meant for machine-specific
// overrides layered on top of the base file.
//
// While mostly intended for files, nothing precludes using it for
// directories (pass an empty extension).
type WithLocal struct {
	path      string
	localPath string
}

// NewWithLocal computes both forms of the path. A dot is inserted
// between base and ext only when ext is non-empty. An empty base is
// valid too and yields leading-dot names like ".kdl"/".local.kdl".
func NewWithLocal(base, ext string) WithLocal {
	path := base
	localPath := base + ".local"
	if ext != "" {
		path += "." + ext
		localPath += "." + ext
	}
	return WithLocal{path: path, localPath: localPath}
}

// Path returns the form without the added ".local".
func (w WithLocal) Path() string {
	return w.path
}

// LocalPath returns the form with ".local" before the extension.
func (w WithLocal) LocalPath() string {
	return w.localPath
}

// Paths destructures into (path, localPath).
func (w WithLocal) Paths() (string, string) {
	return w.path, w.localPath
}

// joinedTo places both forms under dir. Used by Candidates.
func (w WithLocal) joinedTo(dir string) WithLocal {
	return WithLocal{
		path:      filepath.Join(dir, w.path),
		localPath: filepath.Join(dir, w.localPath),
	}
}
