package shell

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, name := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte("#!/bin/sh\n"), 0755))
	}
	return fs
}

func TestResolve(t *testing.T) {
	fs := newTestFs(t, "/opt/bin/deploy", "/usr/bin/cat", "/bin/cat")
	resolver := &Resolver{Fs: fs}

	t.Run("finds an entry", func(t *testing.T) {
		path, ok := resolver.Resolve(SearchPath{"/opt/bin"}, "deploy")
		assert.True(t, ok)
		assert.Equal(t, "/opt/bin/deploy", path)
	})

	t.Run("earlier directories shadow later ones", func(t *testing.T) {
		path, ok := resolver.Resolve(SearchPath{"/usr/bin", "/bin"}, "cat")
		assert.True(t, ok)
		assert.Equal(t, "/usr/bin/cat", path)

		path, ok = resolver.Resolve(SearchPath{"/bin", "/usr/bin"}, "cat")
		assert.True(t, ok)
		assert.Equal(t, "/bin/cat", path)
	})

	t.Run("unlistable directories are skipped", func(t *testing.T) {
		path, ok := resolver.Resolve(SearchPath{"/stale", "/bin"}, "cat")
		assert.True(t, ok)
		assert.Equal(t, "/bin/cat", path)
	})

	t.Run("missing command", func(t *testing.T) {
		_, ok := resolver.Resolve(SearchPath{"/bin", "/usr/bin"}, "nope")
		assert.False(t, ok)
	})

	t.Run("empty search path", func(t *testing.T) {
		_, ok := resolver.Resolve(nil, "cat")
		assert.False(t, ok)
	})
}

func TestResolveSuffix(t *testing.T) {
	fs := newTestFs(t, "/bin/tool.exe", "/bin/plain")
	resolver := &Resolver{Fs: fs, Suffix: ".exe"}

	path, ok := resolver.Resolve(SearchPath{"/bin"}, "tool")
	assert.True(t, ok)
	assert.Equal(t, "/bin/tool.exe", path)

	// An exact match still wins without the suffix.
	path, ok = resolver.Resolve(SearchPath{"/bin"}, "plain")
	assert.True(t, ok)
	assert.Equal(t, "/bin/plain", path)
}

func TestSearchPathFromEnv(t *testing.T) {
	assert.Empty(t, SearchPathFromEnv(""))
	// Platform separators differ; a single entry is always itself.
	assert.Equal(t, SearchPath{"/bin"}, SearchPathFromEnv("/bin"))
}
