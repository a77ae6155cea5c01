// Package format recognizes which known bank-export layout a sheet follows.
// Detection scans the top of the sheet for a header row satisfying one of the
// registered descriptors, then resolves semantic fields to column positions.
package format

// Field names a semantic transaction field resolved from a header label.
type Field string

const (
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldComment     Field = "comment"
	FieldCategory    Field = "category"
	FieldBalance     Field = "balance"
)

// ColumnMap resolves semantic fields to 1-based column indices. It is valid
// only for the sheet it was derived from. A field missing from the map means
// the sheet has no usable column for it; callers must treat that as "field
// unavailable", not as an error.
type ColumnMap map[Field]int

// Column returns the 1-based column for a field and whether it was resolved.
func (m ColumnMap) Column(f Field) (int, bool) {
	col, ok := m[f]
	return col, ok
}

// Descriptor is a named column layout. A sheet matches when every required
// header, after normalization, is satisfied by some cell of one row.
type Descriptor struct {
	Name            string
	RequiredHeaders []string
	Fields          map[Field]string
}

// Registry lists the known export layouts. Order is significant: when two
// descriptors match the same header row, the one declared first wins. The
// slice is package-level read-only configuration; never mutate it.
var Registry = []Descriptor{
	{
		Name:            "ing",
		RequiredHeaders: []string{"F. VALOR", "DESCRIPCIÓN", "IMPORTE (€)", "SALDO (€)"},
		Fields: map[Field]string{
			FieldDate:        "F. VALOR",
			FieldCategory:    "CATEGORÍA",
			FieldDescription: "DESCRIPCIÓN",
			FieldComment:     "COMENTARIO",
			FieldAmount:      "IMPORTE (€)",
			FieldBalance:     "SALDO (€)",
		},
	},
	{
		Name:            "carrefour_pass",
		RequiredHeaders: []string{"FECHA", "CONCEPTO", "CARGO/ABONO"},
		Fields: map[Field]string{
			FieldDate:        "FECHA",
			FieldDescription: "CONCEPTO",
			FieldAmount:      "CARGO/ABONO",
		},
	},
}
