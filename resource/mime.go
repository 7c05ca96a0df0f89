package resource

import (
	"path"
	"strings"

	"github.com/h2non/filetype"
)

const (
	mimeWOFF = "application/font-woff"
	mimeJPEG = "image/jpeg"
)

var mimeTypes = map[string]string{
	"woff":  mimeWOFF,
	"woff2": mimeWOFF,
	"ttf":   "application/font-truetype",
	"eot":   "application/vnd.ms-fontobject",
	"png":   "image/png",
	"jpg":   mimeJPEG,
	"jpeg":  mimeJPEG,
	"gif":   "image/gif",
	"tiff":  "image/tiff",
	"svg":   "image/svg+xml",
	"webp":  "image/webp",
}

// MIMEType infers the MIME type of a resource from the file extension of its
// URL. It is a best-effort guess and returns "" for unknown extensions.
func MIMEType(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	ext := strings.TrimPrefix(path.Ext(url), ".")
	return mimeTypes[strings.ToLower(ext)]
}

// Sniff infers the MIME type of a resource from its content. It returns ""
// if the content type is not recognized.
func Sniff(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
