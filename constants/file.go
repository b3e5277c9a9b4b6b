package constants

import "strings"

// FileKind classifies an input for the text extractor.
type FileKind string

const (
	KindPDF     FileKind = "PDF"
	KindImage   FileKind = "IMAGE"
	KindText    FileKind = "TXT"
	KindCSV     FileKind = "CSV"
	KindUnknown FileKind = "UNKNOWN"
)

// FileKinds holds the allowed kind values for schema validation.
var FileKinds = []string{string(KindPDF), string(KindImage), string(KindText), string(KindCSV)}

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"txt":  {},
	"csv":  {},
	"tsv":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToKind maps a normalized extension to a FileKind.
func MapExtToKind(ext string) FileKind {
	switch NormalizeExt(ext) {
	case "pdf":
		return KindPDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return KindImage
	case "txt", "text", "log", "md":
		return KindText
	case "csv", "tsv":
		return KindCSV
	default:
		return KindUnknown
	}
}

// MapMIMEToKind maps a declared content type to a FileKind.
func MapMIMEToKind(mime string) FileKind {
	switch {
	case mime == "application/pdf":
		return KindPDF
	case strings.HasPrefix(mime, "image/"):
		return KindImage
	case mime == "text/csv" || mime == "text/tab-separated-values":
		return KindCSV
	case strings.HasPrefix(mime, "text/"):
		return KindText
	default:
		return KindUnknown
	}
}
