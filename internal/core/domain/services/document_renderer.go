package services

import (
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/lineitem"

	"github.com/shopspring/decimal"
)

// RenderedLine is one item as it appears on a document, after derivation.
type RenderedLine struct {
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Amount      decimal.Decimal
	Unit        string
	Text        string
}

// RenderedTotals is the plain-text item block of a document.
type RenderedTotals struct {
	Lines      []RenderedLine
	LineText   string
	GrandTotal decimal.Decimal
}

// DocumentRenderer formats line items for emails and printable previews.
//
// Each line reads "{name}：{price}円 × {quantity}{unit} = {amount}円" and the
// block ends with "合計：{total}円". The grand total is rounded up to a whole yen.
type DocumentRenderer struct{}

func NewDocumentRenderer() DocumentRenderer {
	return DocumentRenderer{}
}

// Derive fills in a missing amount or unit price. A zero value counts as missing.
//
//	price=100 quantity=3 amount=0   -> price=100 amount=300
//	price=0   quantity=3 amount=300 -> price=100 amount=300
func (DocumentRenderer) Derive(fields lineitem.Fields) (price, amount decimal.Decimal) {
	price, amount = fields.UnitPrice, fields.Amount
	qty := fields.Quantity

	if amount.IsZero() && !price.IsZero() && !qty.IsZero() {
		amount = price.Mul(qty)
	}
	if price.IsZero() && !amount.IsZero() && !qty.IsZero() {
		price = amount.Div(qty)
	}
	return price, amount
}

// Render derives every item and builds the text block. Items without a
// product name are left out of both the lines and the total.
func (r DocumentRenderer) Render(items []*lineitem.LineItem) RenderedTotals {
	out := RenderedTotals{Lines: make([]RenderedLine, 0, len(items))}
	texts := make([]string, 0, len(items)+1)
	sum := decimal.Zero

	for _, item := range items {
		fields := item.Fields()
		name := strings.TrimSpace(fields.ProductName)
		if name == "" {
			continue
		}

		price, amount := r.Derive(fields)
		line := RenderedLine{
			ProductName: name,
			UnitPrice:   price,
			Quantity:    fields.Quantity,
			Amount:      amount,
			Unit:        fields.Unit,
			Text: fmt.Sprintf("%s：%s円 × %s%s = %s円",
				name, FormatNumber(price), FormatNumber(fields.Quantity), fields.Unit, FormatNumber(amount)),
		}

		out.Lines = append(out.Lines, line)
		texts = append(texts, line.Text)
		sum = sum.Add(amount)
	}

	out.GrandTotal = sum.Ceil()
	texts = append(texts, fmt.Sprintf("合計：%s円", FormatNumber(out.GrandTotal)))
	out.LineText = strings.Join(texts, "\n")

	return out
}

// FormatNumber prints d with at most two decimals and no trailing zeros.
func FormatNumber(d decimal.Decimal) string {
	return d.Round(2).String()
}
