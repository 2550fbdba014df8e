package assets

import "embed"

// Assets holds the stylesheet, script and icons served under /assets.
//
//go:embed css/* js/* img/*
var Assets embed.FS
