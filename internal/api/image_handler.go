package api

import (
	"io/fs"
	"net/http"
)

// ImagesPathPrefix is the URL prefix under which product images are served.
const ImagesPathPrefix = "/images/products"

// noListingFS hides directories so that the file server never renders an
// index page; requests for a directory get a plain 404.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

// NewImageHandler returns a handler serving the files in dir under
// ImagesPathPrefix. Missing files and directories answer 404.
func NewImageHandler(dir string) http.Handler {
	return http.StripPrefix(ImagesPathPrefix, http.FileServer(noListingFS{fs: http.Dir(dir)}))
}
