package model

import "strings"

// AttachedFile is a file read into memory and waiting to be sent.
type AttachedFile struct {
	FileName string
	Data     []byte
	MimeType string
}

// IsAcceptedMimeType reports whether files of this type can be attached:
// PDF documents, images and plain text.
func IsAcceptedMimeType(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	switch {
	case mimeType == "application/pdf":
		return true
	case mimeType == "text/plain":
		return true
	case strings.HasPrefix(mimeType, "image/"):
		return true
	default:
		return false
	}
}
