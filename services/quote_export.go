package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExportJSON serializes the full quotation, including all derived totals,
// as an indented JSON document for download.
func ExportJSON(q *Quotation) ([]byte, error) {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal quotation: %w", err)
	}
	return data, nil
}

// ExportFileName builds the download name for a quotation export:
// quotation-{school}-{yyyy-mm-dd}{ext}. A blank school name becomes
// "unnamed".
func ExportFileName(schoolName string, now time.Time, ext string) string {
	name := SanitizeFilename(schoolName)
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("quotation-%s-%s%s", name, now.Format("2006-01-02"), ext)
}

// SanitizeFilename removes characters that are unsafe for filenames.
func SanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, "\"", "")
	return s
}
