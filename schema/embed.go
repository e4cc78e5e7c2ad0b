package schema

import "embed"

//go:embed docs/*.json
var FS embed.FS
