package codegen

import (
	"fmt"
	"strings"
)

// Format names a generation target.
type Format string

const (
	Arduino Format = "arduino"
	ESPIDF  Format = "espidf"
	Flutter Format = "flutter"
	React   Format = "react"
)

// Formats lists every supported target.
var Formats = []Format{Arduino, ESPIDF, Flutter, React}

type formatInfo struct {
	ext, mime, template string
}

var formatTable = map[Format]formatInfo{
	Arduino: {".ino", "text/x-arduino", "arduino.ino.tmpl"},
	ESPIDF:  {".c", "text/x-csrc", "espidf.c.tmpl"},
	Flutter: {".dart", "application/dart", "flutter.dart.tmpl"},
	React:   {".tsx", "text/typescript", "react.tsx.tmpl"},
}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// Valid reports whether f has a backend.
func (f Format) Valid() bool {
	_, ok := formatTable[f]
	return ok
}

// Extension returns the file extension including the dot, e.g. ".ino".
func (f Format) Extension() string { return formatTable[f].ext }

// MIMEType returns the content type used for downloads.
func (f Format) MIMEType() string { return formatTable[f].mime }

// Filename returns the aggregate download name, e.g. "zap_animations.ino".
func (f Format) Filename() string { return "zap_animations" + f.Extension() }

func (f Format) template() string { return formatTable[f].template }

func (f Format) String() string { return string(f) }
