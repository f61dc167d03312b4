// Package all links every HTML engine into the binary
package all

import (
	_ "github.com/gubarz/literati/internal/render/blackfriday"
	_ "github.com/gubarz/literati/internal/render/goldmark"
	_ "github.com/gubarz/literati/internal/render/gomarkdown"
)
