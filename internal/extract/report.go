package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eduextract/bancoimg/models"
)

// ReportFileName is the fixed name of the run report inside the output
// directory.
const ReportFileName = "reporte_extraccion.txt"

const reportBanner = "======================================================================"
const detailRule = "--------------------------------------------------"

// WriteReportFile renders the report into the run's output directory.
func WriteReportFile(records []models.ImageRecord, info models.RunInfo) error {
	path := filepath.Join(info.OutputDir, ReportFileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, records, info); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteReport renders the structured run summary. It only formats: the
// records are reported in the order given and are never filtered or
// modified.
func WriteReport(w io.Writer, records []models.ImageRecord, info models.RunInfo) error {
	var b strings.Builder

	b.WriteString(reportBanner + "\n")
	b.WriteString("DETAILED IMAGE EXTRACTION REPORT\n")
	b.WriteString(reportBanner + "\n\n")

	fmt.Fprintf(&b, "Source document:  %s\n", info.SourcePath)
	fmt.Fprintf(&b, "Question bank:    %s\n", info.BankLabel)
	fmt.Fprintf(&b, "Document prefix:  %s\n", info.DocPrefix)
	fmt.Fprintf(&b, "Output directory: %s\n", info.OutputDir)
	fmt.Fprintf(&b, "Images extracted: %d\n", len(records))
	fmt.Fprintf(&b, "Processed at:     %s\n\n", info.ProcessedAt.Format("2006-01-02 15:04:05"))

	scientific := 0
	formats := make(map[string]int)
	pages := make(map[int]int)
	for _, r := range records {
		if r.Category == models.CategoryScientific {
			scientific++
		}
		formats[r.Format]++
		pages[r.Page]++
	}

	b.WriteString("STATISTICS:\n")
	fmt.Fprintf(&b, "   - Scientific images: %d\n", scientific)
	fmt.Fprintf(&b, "   - General images: %d\n\n", len(records)-scientific)

	b.WriteString("IMAGE FORMATS:\n")
	for _, format := range sortedKeys(formats) {
		fmt.Fprintf(&b, "   - %s: %d images\n", strings.ToUpper(format), formats[format])
	}
	b.WriteString("\n")

	b.WriteString("PAGE DISTRIBUTION:\n")
	pageNums := make([]int, 0, len(pages))
	for p := range pages {
		pageNums = append(pageNums, p)
	}
	sort.Ints(pageNums)
	for _, p := range pageNums {
		fmt.Fprintf(&b, "   - Page %d: %d images\n", p, pages[p])
	}
	b.WriteString("\n")

	b.WriteString(reportBanner + "\n")
	b.WriteString("EXTRACTED IMAGE DETAIL\n")
	b.WriteString(reportBanner + "\n\n")

	for _, r := range records {
		fmt.Fprintf(&b, "IMAGE #%d\n", r.Sequence)
		b.WriteString(detailRule + "\n")
		fmt.Fprintf(&b, "File:      %s\n", r.Filename)
		fmt.Fprintf(&b, "Prefix:    %s\n", r.DocPrefix)
		fmt.Fprintf(&b, "Page:      %d\n", r.Page)
		fmt.Fprintf(&b, "Question:  %s\n", r.QuestionTag)
		fmt.Fprintf(&b, "Type:      %s\n", r.Category)
		fmt.Fprintf(&b, "Position:  (%.2f, %.2f)\n", r.Position.X, r.Position.Y)
		fmt.Fprintf(&b, "Size:      %dx%d pixels\n", r.Width, r.Height)
		fmt.Fprintf(&b, "Format:    %s\n", strings.ToUpper(r.Format))
		if strings.TrimSpace(r.Context) != "" {
			fmt.Fprintf(&b, "Context:   %s\n", r.Context)
		}
		b.WriteString("\n")
	}

	b.WriteString(reportBanner + "\n")
	b.WriteString("USAGE NOTES\n")
	b.WriteString(reportBanner + "\n")
	b.WriteString("FILENAME FORMAT:\n")
	b.WriteString("NNN_<QuestionBank>_<DocPrefix>_Pregunta_XX_<Type>_PagYY.ext\n\n")
	b.WriteString("  - NNN: sequence number (001, 002, 003...)\n")
	fmt.Fprintf(&b, "  - QuestionBank: %s (question-bank label)\n", info.BankLabel)
	fmt.Fprintf(&b, "  - DocPrefix: %s (derived from the document name)\n", info.DocPrefix)
	b.WriteString("  - Pregunta_XX: question number identified from nearby text,\n")
	b.WriteString("    or Pregunta_Desconocida when no heuristic matched\n")
	b.WriteString("  - Type: Cientifica (formulas/charts) or General\n")
	b.WriteString("  - PagYY: page the image was found on\n")
	b.WriteString("  - ext: original image format (png, jpg, ...)\n\n")
	b.WriteString("Review Pregunta_Desconocida images and rename them manually;\n")
	b.WriteString("the document prefix keeps images from different sources apart.\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
