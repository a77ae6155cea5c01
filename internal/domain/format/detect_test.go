package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-fin/importer/internal/domain/workbook"
)

func textRow(values ...string) []workbook.Cell {
	cells := make([]workbook.Cell, len(values))
	for i, v := range values {
		if v != "" {
			cells[i] = workbook.Cell{Kind: workbook.KindText, Text: v}
		}
	}
	return cells
}

func ingSheet() *workbook.Sheet {
	return &workbook.Sheet{
		Name: "Movimientos",
		Rows: [][]workbook.Cell{
			textRow("ING DIRECT"),
			textRow("Cuenta", "ES12 3456"),
			textRow("F. VALOR", "CATEGORÍA", "SUBCATEGORÍA", "DESCRIPCIÓN", "COMENTARIO", "IMAGEN", "IMPORTE (€)", "SALDO (€)"),
			textRow("01/01/2024", "", "", "NOMINA EMPRESA", "", "", "1500,00", "1500,00"),
		},
	}
}

func TestDetect_ING(t *testing.T) {
	det, err := Detect(ingSheet())
	require.NoError(t, err)

	assert.Equal(t, "ing", det.Format.Name)
	assert.Equal(t, 3, det.HeaderRow)

	col, ok := det.Columns.Column(FieldDate)
	require.True(t, ok)
	assert.Equal(t, 1, col)

	col, ok = det.Columns.Column(FieldDescription)
	require.True(t, ok)
	assert.Equal(t, 4, col)

	col, ok = det.Columns.Column(FieldAmount)
	require.True(t, ok)
	assert.Equal(t, 7, col)

	col, ok = det.Columns.Column(FieldComment)
	require.True(t, ok)
	assert.Equal(t, 5, col)
}

func TestDetect_CarrefourPass(t *testing.T) {
	sheet := &workbook.Sheet{
		Rows: [][]workbook.Cell{
			textRow("FECHA", "CONCEPTO", "CARGO/ABONO"),
			textRow("02/03/2024", "GASOLINERA REPSOL", "-30,10"),
		},
	}

	det, err := Detect(sheet)
	require.NoError(t, err)
	assert.Equal(t, "carrefour_pass", det.Format.Name)
	assert.Equal(t, 1, det.HeaderRow)
}

func TestDetect_UnknownFormat(t *testing.T) {
	sheet := &workbook.Sheet{
		Rows: [][]workbook.Cell{
			textRow("Date", "Payee", "Amount"),
			textRow("2024-01-01", "ACME", "12.00"),
		},
	}

	det, err := Detect(sheet)
	assert.Nil(t, det)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDetect_HeaderBeyondScanWindow(t *testing.T) {
	rows := make([][]workbook.Cell, 0, 60)
	for i := 0; i < 55; i++ {
		rows = append(rows, textRow("preamble"))
	}
	rows = append(rows, textRow("FECHA", "CONCEPTO", "CARGO/ABONO"))

	_, err := Detect(&workbook.Sheet{Rows: rows})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDetect_HeaderWithinScanWindow(t *testing.T) {
	rows := make([][]workbook.Cell, 0, 50)
	for i := 0; i < 49; i++ {
		rows = append(rows, textRow("preamble"))
	}
	rows = append(rows, textRow("FECHA", "CONCEPTO", "CARGO/ABONO"))

	det, err := Detect(&workbook.Sheet{Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, 50, det.HeaderRow)
}

func TestDetect_RegistryOrderBreaksTies(t *testing.T) {
	// A row satisfying both descriptors must resolve to the first one.
	sheet := &workbook.Sheet{
		Rows: [][]workbook.Cell{
			textRow("F. VALOR", "DESCRIPCIÓN", "IMPORTE (€)", "SALDO (€)", "FECHA", "CONCEPTO", "CARGO/ABONO"),
		},
	}

	det, err := Detect(sheet)
	require.NoError(t, err)
	assert.Equal(t, Registry[0].Name, det.Format.Name)
}

func TestDetect_TruncatedHeaders(t *testing.T) {
	// Headers missing the unit suffix still satisfy by substring in reverse.
	sheet := &workbook.Sheet{
		Rows: [][]workbook.Cell{
			textRow("F. VALOR", "DESCRIPCIÓN", "IMPORTE", "SALDO"),
		},
	}

	det, err := Detect(sheet)
	require.NoError(t, err)
	assert.Equal(t, "ing", det.Format.Name)
}

func TestMapColumns_MissingFieldOmitted(t *testing.T) {
	normRow := []string{"FECHA", "CONCEPTO", "CARGO/ABONO"}
	columns := MapColumns(normRow, &Registry[1])

	_, ok := columns.Column(FieldComment)
	assert.False(t, ok)

	col, ok := columns.Column(FieldDescription)
	require.True(t, ok)
	assert.Equal(t, 2, col)
}

func TestDetect_NilSheet(t *testing.T) {
	_, err := Detect(nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSuggestClosest(t *testing.T) {
	sheet := &workbook.Sheet{
		Rows: [][]workbook.Cell{
			textRow("FECHAS", "CONCEPTOS", "IMPORTES"),
		},
	}

	near := SuggestClosest(sheet, 3)
	assert.NotEmpty(t, near)
	assert.LessOrEqual(t, len(near), 3)
}
