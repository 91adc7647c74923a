package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/lingoflow/internal/generation"
	"github.com/mandolyte/mdtopdf"
)

// RenderDeckMarkdown renders a vocabulary batch as a printable markdown deck.
func RenderDeckMarkdown(level generation.Level, entries []generation.WordEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Vocabulary Deck\n\n", level)
	for i, entry := range entries {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, entry.Word)
		if entry.Pronunciation != "" {
			fmt.Fprintf(&b, "*%s*\n\n", entry.Pronunciation)
		}
		fmt.Fprintf(&b, "- **Definition**: %s\n", entry.DefinitionEN)
		fmt.Fprintf(&b, "- **释义**: %s\n", entry.DefinitionCN)
		fmt.Fprintf(&b, "- **Example**: %s\n", entry.Example)
		if len(entry.Synonyms) > 0 {
			fmt.Fprintf(&b, "- **Synonyms**: %s\n", strings.Join(entry.Synonyms, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WriteDeck writes a markdown deck for the batch and converts it to PDF next
// to the markdown file. It returns the absolute path of the PDF.
func WriteDeck(markdownPath string, level generation.Level, entries []generation.WordEntry) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("output file must have .md extension: %s", markdownPath)
	}

	contents := RenderDeckMarkdown(level, entries)
	if err := os.WriteFile(markdownPath, []byte(contents), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	return ConvertMarkdownToPDF(markdownPath)
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
