package store

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"
)

//go:embed bundled/*.txt
var bundledFiles embed.FS

// Bundled returns a read-only filesystem with the catalog files shipped in the binary
func Bundled() afero.Fs {
	sub, err := fs.Sub(bundledFiles, "bundled")
	if err != nil {
		// fs.Sub only fails on an invalid directory name
		panic(err)
	}
	return afero.NewReadOnlyFs(afero.FromIOFS{FS: sub})
}
