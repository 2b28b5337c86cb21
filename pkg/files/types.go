package files

import (
	"path"
	"strings"
)

// Type is the display bucket of a file
type Type string

const (
	TypeImage    Type = "image"
	TypeDocument Type = "document"
	TypeOther    Type = "other"
)

var imageExtensions = map[string]bool{
	"gif": true, "jpg": true, "jpeg": true, "png": true, "webp": true,
	"svg": true, "bmp": true, "tif": true, "tiff": true, "ico": true,
}

var documentExtensions = map[string]bool{
	"doc": true, "docx": true, "txt": true, "md": true, "pdf": true,
	"xls": true, "xlsx": true, "ppt": true, "pptx": true, "csv": true,
	"odt": true, "ods": true, "odp": true, "rtf": true,
}

// Extension returns the lower-case extension of p without the dot
func Extension(p string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

// TypeOf classifies an extension
func TypeOf(ext string) Type {
	ext = strings.ToLower(ext)
	switch {
	case imageExtensions[ext]:
		return TypeImage
	case documentExtensions[ext]:
		return TypeDocument
	default:
		return TypeOther
	}
}
