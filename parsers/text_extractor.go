package parsers

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"baliance.com/gooxml/document"
	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// maxTextLength caps how much text downstream analysis ever sees. Pathological
// documents are truncated rather than timed out.
const maxTextLength = 1000000

// NormalizedText is the output of text extraction: a single string plus the
// metadata downstream stages care about.
type NormalizedText struct {
	Text             string
	OriginalLength   int
	BreaksReinserted bool
}

// TextExtractor converts a Document into NormalizedText. Each format has an
// ordered list of backends; the extractor walks the list and takes the first
// non-empty result, down to a raw byte salvage as the last resort.
type TextExtractor struct{}

// NewTextExtractor creates a text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// extractBackend is one extraction strategy. An error or empty result cascades
// to the next backend in the list.
type extractBackend func(doc *Document) (string, error)

// Extract converts the document to normalized plain text. It only fails when
// the format is unknown and the bytes cannot be salvaged as text; every other
// failure degrades to a cruder backend.
func (e *TextExtractor) Extract(doc *Document) (*NormalizedText, error) {
	var backends []extractBackend
	preserveBreaks := false

	switch doc.Format {
	case FormatPDF:
		backends = []extractBackend{e.extractPDFLayout, e.extractPDFBasic, e.salvageBytes}
	case FormatDOCX:
		backends = []extractBackend{e.extractDOCX, e.extractWithDocconv, e.salvageBytes}
	case FormatDOC:
		backends = []extractBackend{e.extractWithDocconv, e.salvageBytes}
	case FormatTXT:
		backends = []extractBackend{e.extractPlainText}
		preserveBreaks = true
	case FormatRTF:
		backends = []extractBackend{e.extractRTF, e.salvageBytes}
	case FormatHTML:
		backends = []extractBackend{e.extractHTML, e.salvageBytes}
	default:
		text, err := e.salvageBytes(doc)
		if err != nil || !looksLikeText(text) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, doc.Path)
		}
		return e.finish(text, false), nil
	}

	text := e.firstNonEmpty(doc, backends)
	return e.finish(text, !preserveBreaks), nil
}

// firstNonEmpty runs the backends in order and returns the first non-blank
// result, or "" when every backend failed.
func (e *TextExtractor) firstNonEmpty(doc *Document, backends []extractBackend) string {
	for _, backend := range backends {
		text, err := backend(doc)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
	}
	return ""
}

func (e *TextExtractor) finish(text string, reinsertBreaks bool) *NormalizedText {
	original := len(text)
	text = stripControlCharacters(text)
	if reinsertBreaks {
		text = reconstructLineBreaks(text)
	} else {
		text = normalizeLineWhitespace(text)
	}
	if len(text) > maxTextLength {
		text = truncateRunes(text, maxTextLength)
	}
	return &NormalizedText{
		Text:             text,
		OriginalLength:   original,
		BreaksReinserted: reinsertBreaks,
	}
}

// extractPDFLayout uses docconv, which favors layout-aware extraction.
func (e *TextExtractor) extractPDFLayout(doc *Document) (string, error) {
	res, err := docconv.ConvertPath(doc.Path)
	if err != nil {
		return "", fmt.Errorf("docconv failed: %v", err)
	}
	return res.Body, nil
}

// extractPDFBasic walks the pages with a pure-Go reader and concatenates the
// plain text of each page.
func (e *TextExtractor) extractPDFBasic(doc *Document) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %v", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDOCX reads paragraph text and table-cell text from the package.
func (e *TextExtractor) extractDOCX(doc *Document) (string, error) {
	wordDoc, err := document.Open(doc.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %v", err)
	}

	var sb strings.Builder
	for _, para := range wordDoc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	for _, table := range wordDoc.Tables() {
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				for _, para := range cell.Paragraphs() {
					for _, run := range para.Runs() {
						sb.WriteString(run.Text())
					}
					sb.WriteString(" ")
				}
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

func (e *TextExtractor) extractWithDocconv(doc *Document) (string, error) {
	res, err := docconv.ConvertPath(doc.Path)
	if err != nil {
		return "", fmt.Errorf("docconv failed: %v", err)
	}
	return res.Body, nil
}

// extractPlainText decodes the bytes directly. Original line breaks are
// trusted and preserved.
func (e *TextExtractor) extractPlainText(doc *Document) (string, error) {
	data := doc.Data
	// Strip UTF-8 BOM if present
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	return string(data), nil
}

var (
	rtfControlWord = regexp.MustCompile(`\\[a-zA-Z]+-?\d* ?`)
	rtfEscape      = regexp.MustCompile(`\\'[0-9a-fA-F]{2}`)
	htmlScript     = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	htmlTag        = regexp.MustCompile(`(?s)<[^>]+>`)
	htmlBreak      = regexp.MustCompile(`(?i)<(br|/p|/div|/li|/h[1-6]|/tr)[^>]*>`)
)

// extractRTF strips RTF control words and group braces. Lossy, but recovers
// the visible text.
func (e *TextExtractor) extractRTF(doc *Document) (string, error) {
	text := string(doc.Data)
	text = rtfEscape.ReplaceAllString(text, " ")
	text = rtfControlWord.ReplaceAllString(text, " ")
	text = strings.NewReplacer("{", "", "}", "", "\\", "").Replace(text)
	return text, nil
}

// extractHTML strips tags with regexes rather than a full parser; resumes
// exported as HTML are simple enough that this holds up.
func (e *TextExtractor) extractHTML(doc *Document) (string, error) {
	text := string(doc.Data)
	text = htmlScript.ReplaceAllString(text, " ")
	text = htmlBreak.ReplaceAllString(text, "\n")
	text = htmlTag.ReplaceAllString(text, " ")
	replacer := strings.NewReplacer(
		"&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">",
		"&quot;", `"`, "&#39;", "'", "&apos;", "'",
	)
	return replacer.Replace(text), nil
}

// salvageBytes decodes whatever printable characters the file contains.
func (e *TextExtractor) salvageBytes(doc *Document) (string, error) {
	var sb strings.Builder
	data := doc.Data
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String(), nil
}

// looksLikeText reports whether salvaged bytes resemble usable text: mostly
// printable with at least a few letters.
func looksLikeText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	letters, total := 0, 0
	for _, r := range trimmed {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return total > 0 && float64(letters)/float64(total) >= 0.4
}

var controlStripper = runes.Remove(runes.Predicate(func(r rune) bool {
	return r == 0 || (unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r')
}))

func stripControlCharacters(text string) string {
	clean, _, err := transform.String(controlStripper, text)
	if err != nil {
		return strings.ReplaceAll(text, "\x00", "")
	}
	return strings.ReplaceAll(clean, "\r\n", "\n")
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	headerRun     = regexp.MustCompile(` ([A-Z]{4,}(?: [A-Z]{2,})*)`)
	labelPattern  = regexp.MustCompile(` ([A-Z][A-Za-z]{2,}:)`)
	trailingSpace = regexp.MustCompile(`(?m)[ \t]+$`)
)

// reconstructLineBreaks collapses all whitespace, then reinserts line breaks
// before likely section headers (runs of uppercase letters) and before
// "Label:" patterns. Formats that lose line structure during extraction get
// enough of it back for segmentation to work.
func reconstructLineBreaks(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = headerRun.ReplaceAllString(text, "\n$1")
	text = labelPattern.ReplaceAllString(text, "\n$1")
	return strings.TrimSpace(text)
}

// normalizeLineWhitespace collapses whitespace within each line but keeps the
// source line breaks.
func normalizeLineWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.ReplaceAll(line, "\n", " "), " "))
	}
	text = strings.Join(lines, "\n")
	return trailingSpace.ReplaceAllString(text, "")
}
