// Package env is the filesystem and path environment a generator runs in.
//
// An Environment resolves paths, checks for existing files and reads plugin
// sources. The default implementation is backed by an afero filesystem so the
// same code runs against the real disk or an in-memory tree:
//
//	e, err := env.NewOS()
//	mem := env.New(afero.NewMemMapFs(), "/work")
//
// The package also provides tree traversal with common ignore rules and
// marker-file discovery used to locate plugins:
//
//	dirs, err := env.FindDirsContaining(e.Fs(), "plugins", "plugin.yml", env.WalkOptions{})
package env
