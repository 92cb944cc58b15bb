package shell

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// SearchPath is the ordered list of directories consulted to locate
// external programs. Earlier entries shadow later ones. It is derived
// once at startup and never reloaded.
type SearchPath []string

// SearchPathFromEnv splits a PATH-style environment value into a
// SearchPath. An empty value yields an empty path.
func SearchPathFromEnv(value string) SearchPath {
	return SearchPath(filepath.SplitList(value))
}

// ExecSuffix returns the platform's executable file suffix.
func ExecSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// Resolver locates external programs by listing search path
// directories.
type Resolver struct {
	Fs     afero.Fs
	Suffix string
}

// NewResolver returns a Resolver over the real filesystem with the
// platform executable suffix.
func NewResolver() *Resolver {
	return &Resolver{Fs: afero.NewOsFs(), Suffix: ExecSuffix()}
}

// Resolve scans path in order and returns the location of the first
// entry named name, or name plus the executable suffix. Directories
// that cannot be listed are skipped; PATH commonly carries stale or
// unreadable entries.
func (r *Resolver) Resolve(path SearchPath, name string) (string, bool) {
	for _, dir := range path {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		entries, err := afero.ReadDir(r.Fs, dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.Name() == name || (r.Suffix != "" && entry.Name() == name+r.Suffix) {
				return filepath.Join(dir, entry.Name()), true
			}
		}
	}
	return "", false
}
