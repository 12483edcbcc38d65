package embedded

import (
	"embed"
)

// CatalogPath is the location of the endpoint catalog inside FS.
const CatalogPath = "catalog/endpoints.yaml"

// FS embeds the Red List endpoint catalog at build time.
//
//go:embed catalog/*
var FS embed.FS
