package service

import "strings"

// DocumentType classifies a document by its content. The set is closed;
// anything unrecognized is TypeFile.
type DocumentType string

const (
	TypePDF   DocumentType = "pdf"
	TypeExcel DocumentType = "excel"
	TypeWord  DocumentType = "word"
	TypeLink  DocumentType = "link"
	TypeFile  DocumentType = "file"
)

// TypeFromFilename derives the document type from a file extension.
func TypeFromFilename(name string) DocumentType {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasSuffix(n, ".pdf"):
		return TypePDF
	case strings.HasSuffix(n, ".xls"), strings.HasSuffix(n, ".xlsx"):
		return TypeExcel
	case strings.HasSuffix(n, ".doc"), strings.HasSuffix(n, ".docx"):
		return TypeWord
	default:
		return TypeFile
	}
}

// TypeLabel returns the display label for a document type. Total over the
// enum; unknown values fall back to the generic file label.
func TypeLabel(t DocumentType) string {
	switch t {
	case TypePDF:
		return "PDF"
	case TypeExcel:
		return "Excel"
	case TypeWord:
		return "Word"
	case TypeLink:
		return "Länk"
	default:
		return "Fil"
	}
}

// TypeIcon returns the icon name for a document type. Total over the enum;
// unknown values fall back to the generic file icon.
func TypeIcon(t DocumentType) string {
	switch t {
	case TypePDF, TypeWord:
		return "file-text"
	case TypeExcel:
		return "file-spreadsheet"
	case TypeLink:
		return "external-link"
	default:
		return "file"
	}
}
