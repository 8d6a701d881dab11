package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// subFS roots an embedded tree at dir. The directories are fixed by the
// embed patterns above, so a failure is a build defect.
func subFS(fsys embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return http.FS(sub)
}
