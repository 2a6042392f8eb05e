// Package generator produces in-memory file artifacts from plugin templates
// and literal files, and writes them to disk with conflict resolution and
// rollback support.
//
// # Generating
//
// A Generator resolves sources under a plugin directory and destinations
// under an output directory. Sources ending in the template suffix are
// rendered when a context is supplied; everything else is copied verbatim.
//
//	gen, err := generator.New(generator.Config{
//	    Env:       e,
//	    OutputDir: "out",
//	    PluginDir: "plugins/model",
//	})
//	art, err := gen.Generate("model.rb.tmpl", "underscore:app/models/**/*.rb",
//	    generator.GenerateOptions{Context: generator.WithEntity(user)})
//
// Destinations may carry a wildcard pattern which is expanded from the entity
// in the context (see ExpandPattern). File reads and compiled templates are
// cached per Generator, keyed by absolute path.
//
// A Generator is not safe for concurrent use.
//
// # Writing
//
// Artifacts are flushed with Write, which plans every file (create,
// overwrite, unchanged, skip), asks a Resolver about conflicts, and commits
// all writes through a Transaction:
//
//	res, err := generator.Write(ctx, fsys, gen.Artifacts(), generator.WriteOptions{
//	    Resolver: resolver,
//	})
//
// If any write fails, files written so far are restored or removed.
package generator
