package pdfdoc

import (
	"bytes"
	"image"
	"strings"

	// Register the formats we expect to find embedded in documents so
	// image.DecodeConfig can report dimensions without a full decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sniff determines pixel dimensions and format of raw image bytes.
// The format comes from the decoded header when recognizable, otherwise
// from the backend's declared tag. Dimensions are zero when the header
// cannot be read; callers treat that the same as an undersized image.
func Sniff(data []byte, declaredFormat string) (width, height int, format string) {
	format = normalizeFormat(declaredFormat)

	cfg, sniffed, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, format
	}
	if sniffed != "" {
		format = normalizeFormat(sniffed)
	}
	return cfg.Width, cfg.Height, format
}

// normalizeFormat lowercases a format tag and maps decoder names onto
// conventional file extensions.
func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch format {
	case "jpeg":
		return "jpg"
	case "":
		return "bin"
	default:
		return format
	}
}
