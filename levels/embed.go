// Package levels embeds the built-in level descriptors.
package levels

import "embed"

//go:embed *.json
var FS embed.FS
