package fitbook

import _ "embed"

// Version is the released version of FitBook.
//
//go:embed VERSION
var Version string
