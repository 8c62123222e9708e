package presentation

import (
	"fmt"

	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summary holds the two headline labels shown above a breakdown.
type Summary struct {
	Original string `json:"original"`
	Scaled   string `json:"scaled"`
}

// View is everything a presentation layer shows for one conversion.
type View struct {
	Summary Summary    `json:"summary"`
	Text    *TextList  `json:"text,omitempty"`
	Grid    *BlockGrid `json:"grid,omitempty"`
	Invalid bool       `json:"invalid,omitempty"`
}

// Presenter builds views with a fixed grid width.
type Presenter struct {
	maxUnitsPerRow int
}

// NewPresenter returns a presenter laying out at most maxUnitsPerRow blocks per grid row.
func NewPresenter(maxUnitsPerRow int) *Presenter {
	if maxUnitsPerRow <= 0 {
		maxUnitsPerRow = DefaultMaxUnitsPerRow
	}
	return &Presenter{maxUnitsPerRow: maxUnitsPerRow}
}

// MaxUnitsPerRow returns the grid width.
func (p *Presenter) MaxUnitsPerRow() int {
	return p.maxUnitsPerRow
}

// View renders a completed conversion.
func (p *Presenter) View(conv *domain.Conversion) View {
	text := NewTextList(conv.Breakdown, conv.ScaledAmount)
	grid := NewBlockGrid(conv.Breakdown, p.maxUnitsPerRow)
	return View{
		Summary: Summary{
			Original: fmt.Sprintf("Original Amount: %s", FormatAmount(conv.OriginalAmount)),
			Scaled:   fmt.Sprintf("After ÷ %s: %s", conv.ScaleFactor, FormatAmount(conv.ScaledAmount)),
		},
		Text: &text,
		Grid: &grid,
	}
}

// InvalidView is shown when the entered amount could not be used. Both displays are cleared.
func (p *Presenter) InvalidView(scaleFactor decimal.Decimal) View {
	return View{
		Summary: Summary{
			Original: "Original Amount: Invalid input!",
			Scaled:   fmt.Sprintf("After ÷ %s: -", scaleFactor),
		},
		Invalid: true,
	}
}

// ErrorView is shown for unexpected failures.
func (p *Presenter) ErrorView(err error, scaleFactor decimal.Decimal) View {
	return View{
		Summary: Summary{
			Original: fmt.Sprintf("Error: %s", err),
			Scaled:   fmt.Sprintf("After ÷ %s: -", scaleFactor),
		},
	}
}
