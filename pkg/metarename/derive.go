package metarename

import (
	"errors"
	"fmt"
	"strings"
)

// dateTokenLen is the length of a well-formed capture time token,
// YYYY.MM.DD-HH.MM.SS.
const dateTokenLen = 19

var (
	// ErrNoAnchor means neither a shutter count nor a capture time was
	// found, so no name unique enough to be safe can be built.
	ErrNoAnchor = errors.New("no shutter count or capture time")
	// ErrBadCaptureTime means the capture time did not produce a token
	// of the expected shape.
	ErrBadCaptureTime = errors.New("malformed capture time")
)

// Derive builds a filename from the recognized metadata fields. Token order
// in the result is fixed: model, capture time, shutter count, focal length,
// shutter speed, aperture, then the extension. A present shutter count
// supersedes the capture time; without either field there is no anchor and
// an error is returned.
func Derive(md Metadata) (string, error) {
	segs := []string{}
	if md.Model != "" {
		segs = append(segs, modelToken(md.Model))
	}

	switch {
	case md.ShutterCount != "":
		segs = append(segs, firstField(md.ShutterCount))
	case md.DateTimeOriginal != "":
		t := dateToken(md.DateTimeOriginal)
		if len(t) != dateTokenLen {
			return "", fmt.Errorf("%w: %q", ErrBadCaptureTime, md.DateTimeOriginal)
		}
		segs = append(segs, t)
	default:
		return "", ErrNoAnchor
	}

	if md.FocalLength != "" {
		segs = append(segs, focalToken(md.FocalLength))
	}
	if md.ShutterSpeed != "" {
		segs = append(segs, speedToken(md.ShutterSpeed))
	}
	if md.Aperture != "" {
		segs = append(segs, "f-"+firstField(md.Aperture))
	}

	name := strings.Join(segs, "_")
	if md.Extension != "" {
		name += "." + firstField(md.Extension)
	}

	return name, nil
}

// modelToken joins the first two words of the camera model with an
// underscore.
func modelToken(v string) string {
	f := strings.Fields(v)
	switch len(f) {
	case 0:
		return ""
	case 1:
		return f[0]
	}
	return f[0] + "_" + f[1]
}

// dateToken turns an EXIF timestamp (2006:01:02 15:04:05) into a
// filename-safe 2006.01.02-15.04.05 token.
func dateToken(v string) string {
	f := strings.Fields(strings.ReplaceAll(v, ":", "."))
	switch len(f) {
	case 0:
		return ""
	case 1:
		return f[0]
	}
	return f[0] + "-" + f[1]
}

// focalToken collapses a focal length value ("24.0 mm") into one token.
func focalToken(v string) string {
	f := strings.Fields(v)
	switch len(f) {
	case 0:
		return ""
	case 1:
		return f[0]
	}
	return f[0] + f[1]
}

// speedToken turns a shutter speed ("1/250") into a safe token ("1-250s").
func speedToken(v string) string {
	return firstField(strings.ReplaceAll(v, "/", "-")) + "s"
}

func firstField(v string) string {
	f := strings.Fields(v)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
