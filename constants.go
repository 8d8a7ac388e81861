package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeMove
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpExportPNG FileOperation = iota
	FileOpExportTXT
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

type ActionType int

const (
	ActionAddText ActionType = iota
	ActionEditText
	ActionFontSize
	ActionBold
	ActionItalic
	ActionUnderline
	ActionTextAlign
	ActionFontFamily
)

func (t ActionType) String() string {
	switch t {
	case ActionAddText:
		return "add-text"
	case ActionEditText:
		return "edit-text"
	case ActionFontSize:
		return "font-size"
	case ActionBold:
		return "bold"
	case ActionItalic:
		return "italic"
	case ActionUnderline:
		return "underline"
	case ActionTextAlign:
		return "text-align"
	case ActionFontFamily:
		return "font-family"
	default:
		return "unknown"
	}
}

// TextAlign is the horizontal alignment of an item's text inside its box.
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"
)

func (a TextAlign) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

const (
	DefaultText       = "New Text"
	DefaultFontSize   = 16
	DefaultFontFamily = "Arial"
	DefaultTextAlign  = AlignLeft
)

// FontFamilies is the fixed list offered by the font selector.
var FontFamilies = []string{"Arial", "Courier New", "Georgia", "Times New Roman", "Verdana"}

// FontSizes are the presets offered by the size selector, in px.
var FontSizes = []int{16, 18, 20, 24, 28, 35, 40, 48, 54, 60, 70, 99}

const (
	canvasTop     = 2 // toolbar + rule
	minInnerWidth = 10
	maxInnerWidth = 60
	boxHeight     = 3
	cascadeStep   = 2
)

func isFontFamily(name string) bool {
	for _, f := range FontFamilies {
		if f == name {
			return true
		}
	}
	return false
}

func nextFontFamily(current string, step int) string {
	idx := -1
	for i, f := range FontFamilies {
		if f == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return FontFamilies[0]
	}
	n := len(FontFamilies)
	return FontFamilies[((idx+step)%n+n)%n]
}

// nextFontSize returns the preset after current in the given direction,
// wrapping at either end. Sizes between presets snap to the neighbour.
func nextFontSize(current int, step int) int {
	if step >= 0 {
		for _, s := range FontSizes {
			if s > current {
				return s
			}
		}
		return FontSizes[0]
	}
	for i := len(FontSizes) - 1; i >= 0; i-- {
		if FontSizes[i] < current {
			return FontSizes[i]
		}
	}
	return FontSizes[len(FontSizes)-1]
}
