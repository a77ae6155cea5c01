// Package rowparse turns the data rows of a format-detected sheet into
// candidate transactions. Rows are processed strictly in sheet order, each
// independently of the others; parsing the same sheet twice yields identical
// rows except for the temporary ids.
package rowparse

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hucha-fin/importer/internal/domain/classify"
	"github.com/hucha-fin/importer/internal/domain/format"
	"github.com/hucha-fin/importer/internal/domain/workbook"
)

// Type tells incomes and expenses apart.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction is a transient candidate record produced from one sheet row.
// Amount keeps its original sign; Type is derived from that sign at parse
// time and becomes the editable source of truth during review.
type Transaction struct {
	ID          int64 // temporary: run-timestamp base + row index
	Date        time.Time
	Name        string
	Description string
	Comment     string
	Amount      decimal.Decimal
	Currency    string
	Type        Type
	CategoryID  int
	SourceID    int
	PlaceID     *int
}

// Result aggregates one parse pass over a sheet.
type Result struct {
	Transactions []Transaction
	Rows         int // data rows visited
	Skipped      int // rows dropped for an unparsable amount
	Empty        int // rows with no usable cells at all
}

// Parser extracts transactions using a detected column map.
type Parser struct {
	classifier *classify.Classifier
	currency   string
	now        func() time.Time
}

// NewParser creates a parser stamping transactions with the given currency.
func NewParser(currency string) *Parser {
	return &Parser{currency: currency, now: time.Now}
}

// WithClassifier enables keyword classification of parsed rows.
func (p *Parser) WithClassifier(c *classify.Classifier) *Parser {
	p.classifier = c
	return p
}

// WithClock overrides the clock used for temporary ids.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	p.now = now
	return p
}

// ParseSheet walks every row strictly after the detected header row. Rows at
// or above the header are never treated as data.
func (p *Parser) ParseSheet(sheet *workbook.Sheet, det *format.Detection) *Result {
	result := &Result{}
	if sheet == nil || det == nil {
		return result
	}

	idBase := p.now().UnixMilli()

	for rowNum := det.HeaderRow + 1; rowNum <= sheet.RowCount(); rowNum++ {
		result.Rows++

		dateCell := fieldCell(sheet, det.Columns, rowNum, format.FieldDate)
		amountCell := fieldCell(sheet, det.Columns, rowNum, format.FieldAmount)
		descCell := fieldCell(sheet, det.Columns, rowNum, format.FieldDescription)
		commentCell := fieldCell(sheet, det.Columns, rowNum, format.FieldComment)

		if dateCell.IsEmpty() && amountCell.IsEmpty() && descCell.IsEmpty() {
			result.Empty++
			continue
		}

		amount, err := ParseAmountCell(amountCell)
		if err != nil {
			result.Skipped++
			continue
		}

		description := strings.TrimSpace(descCell.String())
		comment := strings.TrimSpace(commentCell.String())

		tx := Transaction{
			ID:          idBase + int64(rowNum),
			Date:        ParseDateCell(dateCell),
			Description: description,
			Comment:     comment,
			Amount:      amount,
			Currency:    p.currency,
			Type:        typeForAmount(amount),
		}
		tx.Name = description
		if tx.Name == "" {
			if tx.Type == TypeIncome {
				tx.Name = "Ingreso"
			} else {
				tx.Name = "Gasto"
			}
		}

		if p.classifier != nil {
			assign := p.classifier.Classify(description)
			tx.CategoryID = assign.CategoryID
			tx.SourceID = assign.SourceID
			tx.PlaceID = assign.PlaceID
		}

		result.Transactions = append(result.Transactions, tx)
	}

	return result
}

func typeForAmount(d decimal.Decimal) Type {
	if d.Sign() > 0 {
		return TypeIncome
	}
	return TypeExpense
}

func fieldCell(sheet *workbook.Sheet, columns format.ColumnMap, rowNum int, field format.Field) workbook.Cell {
	col, ok := columns.Column(field)
	if !ok {
		return workbook.Cell{}
	}
	return sheet.Cell(rowNum, col)
}
