package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/extrame/xls"
	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/roach88/santa/internal/core"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeZip  = "application/zip"
	mimeXLS  = "application/vnd.ms-excel"
	mimeOLE  = "application/x-ole-storage"
	mimeCSV  = "text/csv"
	mimeText = "text/plain"
)

// Option configures Parse.
type Option func(*parser)

type parser struct {
	logger *slog.Logger
}

// WithLogger sets the logger for row counts. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *parser) {
		p.logger = l
	}
}

// Parse decodes a spreadsheet and returns its valid participants in row
// order. The header is the first row with any non-blank cell. Cell values
// are kept as typed; a row is dropped only when its name or email is empty.
//
// Undecodable input yields an ImportError. Input that decodes but has no
// row with both a name and an email yields an EmptyResult error.
func Parse(data []byte, opts ...Option) ([]core.Participant, error) {
	cfg := &parser{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	rows, err := readRows(data)
	if err != nil {
		return nil, core.NewImportError(err)
	}
	rows = lo.DropWhile(rows, blankRow)
	if len(rows) == 0 {
		return nil, core.NewEmptyResultError(0)
	}

	h := newHeader(rows[0])
	body := rows[1:]

	parsed := lo.Map(body, func(row []string, _ int) core.Participant {
		return h.participant(row)
	})
	kept := lo.Filter(parsed, func(p core.Participant, _ int) bool {
		return p.Name != "" && p.Email != ""
	})

	cfg.logger.Debug("parsed roster", "rows", len(body), "kept", len(kept), "dropped", len(body)-len(kept))

	if len(kept) == 0 {
		return nil, core.NewEmptyResultError(len(body))
	}
	return kept, nil
}

func blankRow(row []string) bool {
	return lo.EveryBy(row, func(cell string) bool {
		return strings.TrimSpace(cell) == ""
	})
}

// readRows sniffs the content type and returns the cells of the first sheet.
func readRows(data []byte) ([][]string, error) {
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}

	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		switch {
		case m.Is(mimeXLSX), m.Is(mimeZip):
			return readXLSX(data)
		case m.Is(mimeXLS), m.Is(mimeOLE):
			return readXLS(data)
		case m.Is(mimeCSV), m.Is(mimeText):
			return readCSV(data)
		}
	}

	return nil, fmt.Errorf("unsupported content type %s", detected.String())
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// readXLS reads legacy BIFF workbooks. The decoder panics on some malformed
// files, so panics are turned into errors.
func readXLS(data []byte) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("read xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, errors.New("first sheet is unreadable")
	}

	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for c := 0; c <= row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
