// Package files reads, writes, merges, copies and renders configuration-like
// files for build and scaffolding tooling.
//
// A Files value bundles everything an operation needs: the filesystem, the
// process anchors (working directory and home), the template engine and the
// permissions used for new files. New builds one with sensible defaults and
// functional options override them:
//
//	f := files.New(files.WithFS(filesystem.NewMemory()))
//
//	// Write, then merge more keys in
//	err := f.SetFileData("config/app.json", map[string]interface{}{"name": "app"},
//	    files.ReplaceOptions(format.JSON))
//	err = f.SetFileData("config/app.json", map[string]interface{}{"tags": []interface{}{"a"}},
//	    files.MergeOptions(format.JSON))
//
//	// Find the nearest package.json walking up from the working directory
//	path, found, err := f.FindUp("package.json")
//
// The package-level functions operate on a lazily created default instance.
//
// Every failure is an *errors.FilesError carrying one of the FILE_* origin
// codes, except template engine compile and render errors which are
// returned as the engine produced them.
//
// Operations are synchronous and do no locking: merge writes are a
// read-modify-write sequence, so concurrent writers to the same path must be
// serialized by the caller.
package files
