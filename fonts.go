package main

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// fontVariants holds the regular, italic, bold and bold-italic TTF data
// for one family.
type fontVariants [4][]byte

var (
	sansVariants  = fontVariants{goregular.TTF, goitalic.TTF, gobold.TTF, gobolditalic.TTF}
	serifVariants = fontVariants{gomedium.TTF, gomediumitalic.TTF, gobold.TTF, gobolditalic.TTF}
	monoVariants  = fontVariants{gomono.TTF, gomonoitalic.TTF, gomonobold.TTF, gomonobolditalic.TTF}
)

// The Go fonts stand in for the editor's font list: sans families use Go
// Regular, serif families Go Medium and Courier New uses Go Mono.
var familyVariants = map[string]fontVariants{
	"Arial":           sansVariants,
	"Verdana":         sansVariants,
	"Georgia":         serifVariants,
	"Times New Roman": serifVariants,
	"Courier New":     monoVariants,
}

type fontKey struct {
	family string
	style  int
}

var (
	parsedFonts   = map[fontKey]*truetype.Font{}
	parsedFontsMu sync.Mutex
)

func variantIndex(bold, italic bool) int {
	idx := 0
	if italic {
		idx |= 1
	}
	if bold {
		idx |= 2
	}
	return idx
}

func loadFont(family string, bold, italic bool) (*truetype.Font, error) {
	variants, ok := familyVariants[family]
	if !ok {
		variants = sansVariants
		family = DefaultFontFamily
	}
	key := fontKey{family: family, style: variantIndex(bold, italic)}

	parsedFontsMu.Lock()
	defer parsedFontsMu.Unlock()
	if f, ok := parsedFonts[key]; ok {
		return f, nil
	}
	f, err := truetype.Parse(variants[key.style])
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", family, err)
	}
	parsedFonts[key] = f
	return f, nil
}

// itemFace returns a face sized to the item's font size in px.
func itemFace(item TextItem, scale float64) (font.Face, error) {
	f, err := loadFont(item.FontFamily, item.Bold, item.Italic)
	if err != nil {
		return nil, err
	}
	size := float64(item.FontSize) * scale
	if size <= 0 {
		size = DefaultFontSize * scale
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
