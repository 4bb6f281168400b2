package inkwell

import "embed"

// EmbeddedAssets contains default assets shipped with the framework and
// written into every build unless overridden from the static dir:
// style.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
