// Package imaging implements the image transport (C9): the ASCOM axis-order
// conversion for ImageArray, and the binary ImageBytes fast path selected by
// content negotiation on the Accept header.
package imaging

import "strings"

// parseMediaType splits one Accept header entry (already stripped of its
// q-value and other parameters) into (type, subtype, suffix). A media type
// like "image/svg+xml" yields suffix "xml"; "application/imagebytes" yields
// an empty suffix.
func parseMediaType(entry string) (typ, subtype, suffix string, ok bool) {
	slash := strings.IndexByte(entry, '/')
	if slash < 0 {
		return "", "", "", false
	}
	typ = strings.ToLower(strings.TrimSpace(entry[:slash]))
	rest := strings.ToLower(strings.TrimSpace(entry[slash+1:]))
	if rest == "" || typ == "" {
		return "", "", "", false
	}
	if plus := strings.IndexByte(rest, '+'); plus >= 0 {
		subtype, suffix = rest[:plus], rest[plus+1:]
	} else {
		subtype = rest
	}
	return typ, subtype, suffix, true
}

// WantsImageBytes reports whether an Accept header requests the binary
// ImageBytes transport: it tolerates the header's multi-value, weighted
// ("; q=0.8") form and looks only for a media type whose type is
// "application" and whose subtype is exactly "imagebytes" with no suffix,
// per §4.8.6/§6.3.
func WantsImageBytes(acceptHeader string) bool {
	if acceptHeader == "" {
		return false
	}
	for _, entry := range strings.Split(acceptHeader, ",") {
		entry = strings.TrimSpace(entry)
		if semi := strings.IndexByte(entry, ';'); semi >= 0 {
			entry = entry[:semi]
		}
		entry = strings.TrimSpace(entry)
		typ, subtype, suffix, ok := parseMediaType(entry)
		if ok && typ == "application" && subtype == "imagebytes" && suffix == "" {
			return true
		}
	}
	return false
}
