// Package extract pulls plain text out of uploaded resume and vacancy files.
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"
)

// MaxFileSize caps accepted payloads at 5 MiB.
const MaxFileSize = 5 << 20

// Typed failures callers can match with errors.Is.
var (
	ErrUnsupportedFormat = errors.New("неподдерживаемый формат файла")
	ErrFileTooLarge      = errors.New("файл слишком большой")
	ErrEmptyFile         = errors.New("файл пустой")
	ErrCorrupt           = errors.New("поврежденный или нечитаемый файл")
)

const (
	mimeTXT  = "text/plain"
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDOC  = "application/msword"
)

const (
	kindTXT  = "txt"
	kindPDF  = "pdf"
	kindDOCX = "docx"
	kindDOC  = "doc"
)

var mimeKinds = map[string]string{
	mimeTXT:  kindTXT,
	mimePDF:  kindPDF,
	mimeDOCX: kindDOCX,
	mimeDOC:  kindDOC,
}

var extensionKinds = map[string]string{
	".txt":  kindTXT,
	".pdf":  kindPDF,
	".docx": kindDOCX,
	".doc":  kindDOC,
}

// FromBytes extracts plain text from an in-memory payload. The declared MIME
// type wins; the filename extension is the fallback. Failures are typed:
// oversized, empty, unsupported, or corrupt.
func FromBytes(data []byte, contentType, fileName string) (string, error) {
	if err := Validate(data, contentType, fileName); err != nil {
		return "", err
	}

	kind, err := detectKind(contentType, fileName, data)
	if err != nil {
		return "", err
	}

	switch kind {
	case kindTXT:
		return decodeText(data)
	case kindPDF:
		return extractPDF(data)
	case kindDOCX:
		return extractDOCX(data)
	case kindDOC:
		return "", fmt.Errorf("%w: DOC формат не поддерживается, конвертируйте файл в DOCX", ErrUnsupportedFormat)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
}

// Validate performs the size, emptiness, and type checks without extracting.
func Validate(data []byte, contentType, fileName string) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, fileName)
	}
	if len(data) > MaxFileSize {
		return fmt.Errorf("%w: максимальный размер %dMB", ErrFileTooLarge, MaxFileSize>>20)
	}
	_, err := detectKind(contentType, fileName, data)
	return err
}

// Metadata describes an accepted payload.
type Metadata struct {
	FileName    string
	ContentType string
	Kind        string
	SizeBytes   int
	Size        string
}

// Describe resolves the file kind and reports size information.
func Describe(data []byte, contentType, fileName string) (Metadata, error) {
	kind, err := detectKind(contentType, fileName, data)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		FileName:    fileName,
		ContentType: contentType,
		Kind:        kind,
		SizeBytes:   len(data),
		Size:        formatFileSize(len(data)),
	}, nil
}

func detectKind(contentType, fileName string, data []byte) (string, error) {
	normalized := normalizeMimeType(contentType, fileName, data)
	if kind, ok := mimeKinds[normalized]; ok {
		return kind, nil
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	if kind, ok := extensionKinds[ext]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, normalized)
}

// normalizeMimeType strips parameters and maps application/zip payloads that
// are really OOXML documents, by content first and extension second.
func normalizeMimeType(mimeType, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "application/zip" {
		return clean
	}
	if hasZipEntry(data, "word/document.xml") {
		return mimeDOCX
	}
	if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
		return mimeDOCX
	}
	return clean
}

func hasZipEntry(data []byte, want string) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == want {
			return true
		}
	}
	return false
}

// decodeText decodes plain text as UTF-8 with Windows-1251 and CP1252
// fallbacks, the encodings most common for Russian-market resumes.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	for _, cm := range []*charmap.Charmap{charmap.Windows1251, charmap.Windows1252} {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		return string(decoded), nil
	}
	return "", fmt.Errorf("%w: не удалось определить кодировку текстового файла", ErrCorrupt)
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if pdfReader.NumPage() == 0 {
		return "", fmt.Errorf("%w: PDF файл не содержит страниц", ErrCorrupt)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: не удалось извлечь текст из PDF файла", ErrEmptyFile)
	}
	return text, nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer doc.Close()

	text := stripDocxXML(doc.Editable().GetContent())
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: DOCX файл не содержит текста", ErrEmptyFile)
	}
	return text, nil
}

// stripDocxXML drops markup from document.xml content, inserting newlines at
// paragraph and line-break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func formatFileSize(size int) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
