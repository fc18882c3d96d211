package geonorm

import "fmt"

// NewName formats the normalized filename for a parsed image:
// _<id>[_query]@<lat>@<lon>@<status><ext>, coordinates fixed to six
// decimal places with their sign preserved.
func NewName(p ParsedImage, success bool) string {
	suffix := ""
	if p.Query {
		suffix = "_query"
	}

	status := "failure"
	if success {
		status = "success"
	}

	return fmt.Sprintf("_%s%s@%.6f@%.6f@%s%s", p.ID, suffix, p.Lat, p.Lon, status, p.Ext)
}
