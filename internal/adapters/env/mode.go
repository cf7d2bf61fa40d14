package env

import (
	"os"
	"strings"

	"github.com/medconnect/landing/internal/core"
)

const DevVar = "MEDCONNECT_DEV"

func DetectMode() core.Mode {
	switch strings.ToLower(os.Getenv(DevVar)) {
	case "1", "true", "yes":
		return core.ModeDev
	}
	return core.ModeProd
}
