package format

import (
	"errors"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hucha-fin/importer/internal/domain/workbook"
)

// maxScanRows bounds the header search; bank exports put preamble above the
// header but never this much of it.
const maxScanRows = 50

// ErrUnknownFormat means no registered descriptor matched any of the scanned
// rows. The import must abort before any row parsing.
var ErrUnknownFormat = errors.New("spreadsheet format not recognized")

// Detection is the outcome of a successful format scan.
type Detection struct {
	Format    *Descriptor
	Columns   ColumnMap
	HeaderRow int // 1-based row that held the headers
}

// Detect scans rows 1..min(50, rowCount) for a header row satisfying all
// required headers of some registered descriptor. The first matching row wins;
// within a row, descriptors are tried in registry order.
func Detect(sheet *workbook.Sheet) (*Detection, error) {
	if sheet == nil {
		return nil, ErrUnknownFormat
	}

	limit := sheet.RowCount()
	if limit > maxScanRows {
		limit = maxScanRows
	}

	for rowNum := 1; rowNum <= limit; rowNum++ {
		normRow := normalizeRow(sheet.Row(rowNum))
		for i := range Registry {
			desc := &Registry[i]
			if rowSatisfies(normRow, desc.RequiredHeaders) {
				return &Detection{
					Format:    desc,
					Columns:   MapColumns(normRow, desc),
					HeaderRow: rowNum,
				}, nil
			}
		}
	}

	return nil, ErrUnknownFormat
}

// MapColumns resolves each semantic field of the descriptor to the first
// header cell matching its label, using the same bidirectional substring rule
// as detection. Fields with no matching header are left out of the map.
func MapColumns(normRow []string, desc *Descriptor) ColumnMap {
	columns := make(ColumnMap, len(desc.Fields))
	for field, label := range desc.Fields {
		normLabel := Normalize(label)
		for i, cell := range normRow {
			if headerSatisfies(cell, normLabel) {
				columns[field] = i + 1
				break
			}
		}
	}
	return columns
}

func normalizeRow(cells []workbook.Cell) []string {
	norm := make([]string, len(cells))
	for i, c := range cells {
		norm[i] = Normalize(c.String())
	}
	return norm
}

func rowSatisfies(normRow []string, required []string) bool {
	for _, req := range required {
		normReq := Normalize(req)
		found := false
		for _, cell := range normRow {
			if headerSatisfies(cell, normReq) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SuggestClosest ranks the sheet's candidate header cells against the known
// required headers and returns the nearest misses. It is a diagnostic aid for
// the "format not recognized" path and has no effect on detection itself.
func SuggestClosest(sheet *workbook.Sheet, max int) []string {
	if sheet == nil || max <= 0 {
		return nil
	}

	limit := sheet.RowCount()
	if limit > maxScanRows {
		limit = maxScanRows
	}

	var candidates []string
	seen := make(map[string]struct{})
	for rowNum := 1; rowNum <= limit; rowNum++ {
		for _, cell := range normalizeRow(sheet.Row(rowNum)) {
			if cell == "" {
				continue
			}
			if _, ok := seen[cell]; ok {
				continue
			}
			seen[cell] = struct{}{}
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var ranks fuzzy.Ranks
	for _, desc := range Registry {
		for _, req := range desc.RequiredHeaders {
			ranks = append(ranks, fuzzy.RankFindNormalizedFold(Normalize(req), candidates)...)
		}
	}
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) >= max {
			break
		}
	}
	return out
}
