package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tealeg/xlsx"
	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"
	"github.com/xuri/excelize/v2"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/models"
)

// TableExtractor emits one table chunk per detected table. PDF tables come
// from tabula's layout analysis; spreadsheet sheets are treated as one
// table each.
type TableExtractor struct{}

func NewTableExtractor() *TableExtractor {
	return &TableExtractor{}
}

func (e *TableExtractor) Extract(path string) ([]models.Chunk, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(path)
	case ".xlsx":
		return e.extractXLSX(path)
	case ".ods":
		return e.extractODS(path)
	default:
		return nil, nil
	}
}

func (e *TableExtractor) extractPDF(path string) ([]models.Chunk, error) {
	doc, warnings, err := tabula.Open(path).Document()
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		log.Debug().Str("source", path).Msgf("Table extraction warnings: %s", tabula.FormatWarnings(warnings))
	}

	var chunks []models.Chunk
	tableIndex := 0
	for _, page := range doc.Pages {
		for _, table := range page.ExtractTables() {
			tableIndex++
			content := renderTable(table.Rows)
			if content == "" {
				continue
			}
			chunks = append(chunks, models.Chunk{
				Type:       models.ChunkTypeTable,
				Content:    content,
				Page:       page.Number,
				Source:     path,
				TableIndex: tableIndex,
			})
		}
	}
	return chunks, nil
}

func (e *TableExtractor) extractXLSX(path string) ([]models.Chunk, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}

	var chunks []models.Chunk
	for sheetNum, sheet := range f.Sheets {
		rows := make([][]string, 0, len(sheet.Rows))
		for _, row := range sheet.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				cells = append(cells, cell.String())
			}
			rows = append(rows, cells)
		}
		content := renderStringTable(rows)
		if content == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{
			Type:       models.ChunkTypeTable,
			Content:    fmt.Sprintf("Sheet: %s\n%s", sheet.Name, content),
			Page:       sheetNum + 1, // sheets stand in for pages
			Source:     path,
			TableIndex: sheetNum + 1,
		})
	}
	return chunks, nil
}

func (e *TableExtractor) extractODS(path string) ([]models.Chunk, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var chunks []models.Chunk
	for sheetNum, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			log.Warn().Err(err).Str("sheet", sheetName).Str("source", path).Msg("Skipping unreadable sheet")
			continue
		}
		content := renderStringTable(rows)
		if content == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{
			Type:       models.ChunkTypeTable,
			Content:    fmt.Sprintf("Sheet: %s\n%s", sheetName, content),
			Page:       sheetNum + 1,
			Source:     path,
			TableIndex: sheetNum + 1,
		})
	}
	return chunks, nil
}

// renderTable converts detected table cells into the canonical textual
// rendering: the first row supplies column names, every following row
// becomes one "Name: value; Name: value" line.
func renderTable(rows [][]model.Cell) string {
	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell.Text)
		}
		grid = append(grid, cells)
	}
	return renderStringTable(grid)
}

func renderStringTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	headers := rows[0]
	if len(rows) == 1 {
		// A lone row has no header/value structure; keep the values.
		line := strings.TrimSpace(strings.Join(headers, "; "))
		if strings.Trim(line, "; ") == "" {
			return ""
		}
		return line
	}

	var lines []string
	for _, row := range rows[1:] {
		parts := make([]string, 0, len(row))
		for i, val := range row {
			name := fmt.Sprintf("Column %d", i+1)
			if i < len(headers) && strings.TrimSpace(headers[i]) != "" {
				name = strings.TrimSpace(headers[i])
			}
			parts = append(parts, fmt.Sprintf("%s: %s", name, strings.TrimSpace(val)))
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, "; "))
		}
	}
	return strings.Join(lines, "\n")
}
