package geonorm

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	// query images: "<id>,<lat>,<lon>," — an opaque identifier followed by
	// the capture coordinates. Only the leading prefix matters; anything
	// after the third comma is ignored.
	queryRe = regexp.MustCompile(`^([^,]+),(-?\d+\.?\d*),(-?\d+\.?\d*),`)

	// reference tiles are named for the coordinates they cover.
	satelliteRe = regexp.MustCompile(`^satellite_(-?\d+\.?\d*)_(-?\d+\.?\d*)$`)
)

// ParsedImage is the structured result of parsing a dataset filename.
type ParsedImage struct {
	ID  string
	Lat float64
	Lon float64

	// Query marks Pattern-A files. The dataset convention is that comma
	// names are always query images and satellite_ names are always
	// reference tiles; nothing in the name itself says so.
	Query bool

	// Ext is the original extension, leading dot and case included.
	Ext string
}

// Parse extracts the identifier and coordinates embedded in an image
// filename. It recognizes the two dataset conventions and reports false
// for anything else; an unrecognized name is expected, not an error.
func Parse(filename string) (ParsedImage, bool) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	if m := queryRe.FindStringSubmatch(base); m != nil {
		return ParsedImage{
			ID:    m[1],
			Lat:   mustFloat(m[2]),
			Lon:   mustFloat(m[3]),
			Query: true,
			Ext:   ext,
		}, true
	}

	if m := satelliteRe.FindStringSubmatch(base); m != nil {
		// Tiles carry no identifier, so one is minted from the raw
		// coordinate lexemes: dots dropped, minus signs become "n".
		id := strings.NewReplacer(".", "", "-", "n").Replace(m[1] + "_" + m[2])
		return ParsedImage{
			ID:  id,
			Lat: mustFloat(m[1]),
			Lon: mustFloat(m[2]),
			Ext: ext,
		}, true
	}

	return ParsedImage{}, false
}

// mustFloat parses coordinate text captured by the patterns above, which
// only admit valid decimal literals.
func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
