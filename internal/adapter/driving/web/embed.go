package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet, particle, hero and
// site scripts).
//
//go:embed static/*
var StaticFS embed.FS
