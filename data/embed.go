// Package data provides the embedded sample pyramids and display palette.
package data

import "embed"

// dataFS embeds all pyramid and palette files at build time.
//
//go:embed *.json *.hcl
var dataFS embed.FS

// FS returns the embedded filesystem containing pyramid data.
func FS() embed.FS {
	return dataFS
}
