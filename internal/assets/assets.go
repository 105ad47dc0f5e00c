package assets

import "embed"

// DefaultPortraitFile is the placeholder cover served for series whose
// metadata lookup produced nothing.
const DefaultPortraitFile = "web/default-portrait.jpg"

//go:embed all:web
var WebFS embed.FS
