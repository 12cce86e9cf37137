package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURI = errors.New("value is not a base64 data URI")

// GetContentType returns the media type of a data URI, or an empty string.
func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if !strings.HasPrefix(file, dataPrefix) || end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// DecodedLen estimates the payload size of a data URI without decoding it.
func DecodedLen(file string) int {
	idx := strings.Index(file, base64Marker)
	if idx == -1 {
		return len(file)
	}

	return stdBase64.StdEncoding.DecodedLen(len(file) - idx - len(base64Marker))
}

// Decode returns the media type and raw bytes of a data URI.
func Decode(file string) (contentType string, data []byte, err error) {
	contentType = GetContentType(file)
	if contentType == "" {
		return "", nil, ErrNotDataURI
	}

	payload := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err = stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URI: %w", err)
	}

	return contentType, data, nil
}
