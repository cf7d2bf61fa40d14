package assets

import (
	"embed"
	iofs "io/fs"

	"github.com/medconnect/landing/internal/adapters/fs"
)

//go:embed static
var staticFS embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() *fs.EmbedFileSystem {
	sub, err := iofs.Sub(staticFS, "static")
	if err != nil {
		panic("assets: static directory missing from embed: " + err.Error())
	}
	return fs.NewEmbedFileSystem(sub)
}
