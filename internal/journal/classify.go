package journal

import "strings"

const (
	headerMarker = "Date:"
	photoMarker  = "Photo:"
)

// Classify reports what role a raw export line plays. A marker anywhere in the
// line counts, and Date: wins over Photo:.
func Classify(line string) LineKind {
	switch {
	case strings.Contains(line, headerMarker):
		return KindHeader
	case strings.Contains(line, photoMarker):
		return KindPhoto
	default:
		return KindPlain
	}
}

// HeaderPayload returns the timestamp text following the Date: marker.
func HeaderPayload(line string) string {
	return markerValue(line, headerMarker)
}

// PhotoToken returns the filename following the Photo: marker.
func PhotoToken(line string) string {
	return markerValue(line, photoMarker)
}

func markerValue(line, marker string) string {
	_, rest, ok := strings.Cut(line, marker)
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}

// RewritePhoto turns an attached photo into a Markdown image set apart by
// blank lines.
func RewritePhoto(token string) string {
	return "\n![](" + token + ")\n"
}
