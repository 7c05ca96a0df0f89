package resource

import (
	"encoding/base64"
	"strings"
)

// IsDataURL is a predicate for URLs of scheme "data:".
func IsDataURL(url string) bool {
	return len(url) >= 5 && strings.EqualFold(url[:5], "data:")
}

// DataURL creates a base64 encoded data URL for content of a given MIME type.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DataURLContent extracts the payload of a base64 encoded data URL.
// It returns ok=false for data URLs without base64 encoding or with
// malformed content.
func DataURLContent(url string) (mimeType string, data []byte, ok bool) {
	if !IsDataURL(url) {
		return "", nil, false
	}
	header, payload, found := strings.Cut(url[5:], ",")
	if !found || !strings.HasSuffix(header, ";base64") {
		return "", nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return strings.TrimSuffix(header, ";base64"), data, true
}
