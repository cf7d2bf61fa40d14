package usecase

import (
	"github.com/medconnect/landing/internal/adapters/fs"
	"github.com/medconnect/landing/internal/core"
)

// AssetSource is what rendering and export need from the asset resolver.
type AssetSource interface {
	URL(name string) string
	Manifest() *core.Manifest
	Read(name string) ([]byte, error)
}

// CLIOutput is the terminal output the commands report through.
type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
