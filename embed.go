package blogfront

import "embed"

// stylesheet styles the class names of components.DefaultTheme.
const stylesheet = "blogfront.css"

// EmbeddedAssets holds the files served under /public/ from the binary.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
