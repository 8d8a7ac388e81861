package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// clipboardAccess is swapped out in tests.
type clipboardAccess interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

var sysClipboard clipboardAccess = systemClipboard{}

// readClipboardLine returns clipboard text cleaned up for a single-line
// text item.
func readClipboardLine() (string, error) {
	raw, err := sysClipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return singleLine(cleanClipboardText(raw)), nil
}

func writeClipboard(text string) error {
	if err := sysClipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// singleLine folds line breaks and tabs into spaces; items hold one line.
func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "<") &&
		(strings.Contains(trimmed, "<html") || strings.Contains(trimmed, "<body") ||
			strings.Contains(trimmed, "<div") || strings.Contains(trimmed, "<span") || strings.Contains(trimmed, "<p"))
}

func isRTFLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// extractTextFromRTF keeps the visible text of an RTF document, turning
// \par and \line into newlines and decoding \'hh escapes.
func extractTextFromRTF(rtf string) string {
	var result strings.Builder
	result.Grow(len(rtf))
	data := []byte(rtf)

	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b == '{' || b == '}':
			continue
		case b == '\\' && i+1 < len(data):
			next := data[i+1]
			switch {
			case next == '\'' && i+3 < len(data):
				if val, err := strconv.ParseUint(string(data[i+2:i+4]), 16, 8); err == nil {
					result.WriteRune(rune(val))
				}
				i += 3
			case next == '\\' || next == '{' || next == '}':
				result.WriteByte(next)
				i++
			case next == '~' || next == '_':
				result.WriteByte(' ')
				i++
			case next == '-':
				i++
			case isRTFLetter(next):
				start := i + 1
				end := start
				for end < len(data) && isRTFLetter(data[end]) {
					end++
				}
				word := string(data[start:end])
				for end < len(data) && (data[end] == '-' || (data[end] >= '0' && data[end] <= '9')) {
					end++
				}
				if end < len(data) && data[end] == ' ' {
					end++
				}
				switch word {
				case "par", "line":
					result.WriteByte('\n')
				case "tab":
					result.WriteByte('\t')
				}
				i = end - 1
			default:
				i++
			}
		case b == '\\':
			continue
		case b == '\n' || b == '\r':
			continue
		case b >= 32 && b < 127, b == '\t':
			result.WriteByte(b)
		}
	}
	return result.String()
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
	"&nbsp;", " ",
)

func extractTextFromHTML(html string) string {
	var result strings.Builder
	result.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			result.WriteRune(' ')
		case !inTag:
			result.WriteRune(r)
		}
	}
	return htmlEntities.Replace(result.String())
}

// cleanClipboardText strips rich-text markup and control characters and
// normalizes line endings.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	switch {
	case isRTF(text):
		text = extractTextFromRTF(text)
	case isHTML(text):
		text = extractTextFromHTML(text)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	return result.String()
}
