package utils

import (
	"encoding/base64"
	"fmt"
)

// FotoDataURI re-encodes stored photo bytes as a data: URI for transport.
// Returns nil when there is no photo, which serializes to JSON null.
func FotoDataURI(foto []byte, tipo *string) *string {
	if len(foto) == 0 {
		return nil
	}
	mimeType := "application/octet-stream"
	if tipo != nil && *tipo != "" {
		mimeType = *tipo
	}
	uri := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(foto))
	return &uri
}
