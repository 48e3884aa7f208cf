package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/quotebook/internal/entities"
	"github.com/mrlokans/quotebook/internal/quotes"
	"github.com/mrlokans/quotebook/internal/utils"
)

// MarkdownExporter writes one markdown file per category plus an index.
type MarkdownExporter struct {
	ExportDir     string
	IndexFileName string
	now           func() time.Time
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir:     exportDir,
		IndexFileName: "index.md",
		now:           time.Now,
	}
}

func (exporter *MarkdownExporter) ensureDir() error {
	if exporter.ExportDir == "" {
		return fmt.Errorf("export directory not configured")
	}
	if err := os.MkdirAll(exporter.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}

// CategoryFileName returns the file name used for a category export.
func CategoryFileName(category entities.Category) string {
	return utils.SanitizeFilename(category.Label()) + ".md"
}

// GenerateMarkdown renders the quotes of one category with frontmatter.
func GenerateMarkdown(category entities.Category, list []entities.Quote, exportedAt time.Time) string {
	var builder strings.Builder

	favourites := 0
	for _, q := range list {
		if q.IsFavorite {
			favourites++
		}
	}

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: quotes\n")
	fmt.Fprintf(&builder, "category: %s\n", category)
	fmt.Fprintf(&builder, "exported_at: %s\n", exportedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "quote_count: %d\n", len(list))
	fmt.Fprintf(&builder, "favourite_count: %d\n", favourites)
	fmt.Fprintf(&builder, "tags: [quotes, %s]\n", category)
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", category.Label())

	for _, q := range list {
		heading := q.Author
		if q.IsFavorite {
			heading += " ★"
		}
		fmt.Fprintf(&builder, "## %s\n\n", heading)
		fmt.Fprintf(&builder, "> %s\n\n", strings.ReplaceAll(q.Text, "\n", "\n> "))
		fmt.Fprintf(&builder, "- id: %d\n", q.ID)
		fmt.Fprintf(&builder, "- background: %s\n", q.BackgroundColor)
		fmt.Fprintf(&builder, "- added: %s\n\n", q.CreatedAt.Format("2006-01-02 15:04"))
	}

	return builder.String()
}

func (exporter *MarkdownExporter) generateIndex(groups map[entities.Category][]entities.Quote, total int, exportedAt time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: quotes_index\n")
	fmt.Fprintf(&builder, "exported_at: %s\n", exportedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "quote_count: %d\n", total)
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# Quotes\n\n")

	for _, category := range entities.Categories {
		list, ok := groups[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&builder, "- [%s](%s) (%d)\n", category.Label(), CategoryFileName(category), len(list))
	}

	return builder.String()
}

func (exporter *MarkdownExporter) writeFile(name, content string) error {
	path := filepath.Join(exporter.ExportDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (exporter *MarkdownExporter) removeFile(name string) error {
	path := filepath.Join(exporter.ExportDir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// Export writes every non-empty category and the index, removing files
// of categories that no longer hold quotes. Quotes keep the
// order they were passed in.
func (exporter *MarkdownExporter) Export(list []entities.Quote) (ExportResult, error) {
	if err := exporter.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{Dir: exporter.ExportDir}
	exportedAt := exporter.now()
	groups := quotes.GroupByCategory(list)

	for _, category := range entities.Categories {
		categoryQuotes, ok := groups[category]
		if !ok {
			// A category emptied since the last run must not keep its old file.
			if err := exporter.removeFile(CategoryFileName(category)); err != nil {
				return result, err
			}
			continue
		}
		content := GenerateMarkdown(category, categoryQuotes, exportedAt)
		if err := exporter.writeFile(CategoryFileName(category), content); err != nil {
			return result, err
		}
		result.FilesWritten++
		result.Categories++
		result.QuotesProcessed += len(categoryQuotes)
	}

	if err := exporter.writeFile(exporter.IndexFileName, exporter.generateIndex(groups, len(list), exportedAt)); err != nil {
		return result, err
	}
	result.FilesWritten++

	return result, nil
}

var _ QuoteExporter = (*MarkdownExporter)(nil)
