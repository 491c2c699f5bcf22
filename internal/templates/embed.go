package templates

import (
	"embed"
	"io/fs"
)

//go:embed html/*.html
var files embed.FS

// HTML holds the default checkout pages keyed by file name.
func HTML() fs.FS {
	sub, err := fs.Sub(files, "html")
	if err != nil {
		panic(err)
	}
	return sub
}
