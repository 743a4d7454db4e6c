package notequiz

import _ "embed"

// Version is the release version of notequiz.
//
//go:embed VERSION
var Version string
