package presentation

import (
	"fmt"

	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TextLine is one denomination row of the textual breakdown.
type TextLine struct {
	Count        int64  `json:"count"`
	Denomination string `json:"denomination"`
	Value        string `json:"value"`
	Percentage   string `json:"percentage"`
	Color        string `json:"color"`
	Text         string `json:"text"`
}

// TextList is the textual breakdown. Only denominations with a non-zero count get a line.
type TextList struct {
	Heading string     `json:"heading"`
	Lines   []TextLine `json:"lines"`
	Message string     `json:"message,omitempty"`
}

// NewTextList builds the textual breakdown. Percentages are relative to total,
// the amount the user asked for, so they can add up to more than 100 when the
// remainder was rounded up.
func NewTextList(b domain.Breakdown, total decimal.Decimal) TextList {
	list := TextList{
		Heading: fmt.Sprintf("Total: %s =", FormatAmount(total)),
		Lines:   []TextLine{},
	}

	for _, e := range b.Entries {
		if e.Count <= 0 {
			continue
		}
		value := e.Value()
		line := TextLine{
			Count:        e.Count,
			Denomination: e.Denomination.Value.String(),
			Value:        FormatAmount(value),
			Percentage:   percentage(value, total),
			Color:        e.Denomination.Color,
		}
		line.Text = fmt.Sprintf("%d × %s = %s (%s%%)", line.Count, line.Denomination, line.Value, line.Percentage)
		list.Lines = append(list.Lines, line)
	}

	if b.IsEmpty() && len(b.Entries) > 0 {
		smallest := b.Entries[len(b.Entries)-1].Denomination.Value
		list.Message = fmt.Sprintf("Amount is less than smallest denomination (%s)", smallest)
	}

	return list
}
