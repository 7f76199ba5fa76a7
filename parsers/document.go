package parsers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the source document type, detected from the file
// extension.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatDOC     Format = "doc"
	FormatTXT     Format = "txt"
	FormatRTF     Format = "rtf"
	FormatHTML    Format = "html"
	FormatUnknown Format = "unknown"
)

var (
	// ErrUnreadableFile means the file could not be opened or read at all.
	ErrUnreadableFile = errors.New("document is unreadable")
	// ErrUnsupportedFormat means the extension is unknown and the bytes do
	// not decode to usable plain text.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Document holds the raw bytes of one uploaded file plus its detected format.
// It lives only for the duration of a single extraction call.
type Document struct {
	Path   string
	Data   []byte
	Format Format
}

// DetectFormat maps a file extension to a Format tag.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".doc":
		return FormatDOC
	case ".txt":
		return FormatTXT
	case ".rtf":
		return FormatRTF
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatUnknown
	}
}

// ReadDocument loads the file and tags its format. Unknown extensions are
// still read; the extractor will attempt a plain-text salvage before giving
// up.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return &Document{
		Path:   path,
		Data:   data,
		Format: DetectFormat(path),
	}, nil
}
