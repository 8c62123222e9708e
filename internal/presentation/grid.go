package presentation

import (
	"fmt"

	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxUnitsPerRow caps the number of blocks in one grid row.
	DefaultMaxUnitsPerRow = 10
	// MaxRowsPerGroup caps the rows drawn for one denomination; the rest are counted in Hidden.
	MaxRowsPerGroup = 20
)

// labelThreshold is the smallest face value whose blocks carry a value label.
var labelThreshold = decimal.NewFromInt(100)

// Block is one physical unit in the grid.
type Block struct {
	Color string `json:"color"`
	Label string `json:"label,omitempty"`
}

// BlockGroup holds every block of one denomination, split into rows.
type BlockGroup struct {
	Header string    `json:"header"`
	Color  string    `json:"color"`
	Count  int64     `json:"count"`
	Rows   [][]Block `json:"rows"`
	Hidden int64     `json:"hidden,omitempty"`
	More   string    `json:"more,omitempty"`
}

// BlockGrid is the visual breakdown: one group per denomination with a non-zero count.
type BlockGrid struct {
	Groups     []BlockGroup `json:"groups"`
	TotalUnits int64        `json:"totalUnits"`
	Summary    string       `json:"summary,omitempty"`
	Message    string       `json:"message,omitempty"`
}

// NewBlockGrid lays out the breakdown with at most maxPerRow blocks per row and
// MaxRowsPerGroup rows per denomination.
// A non-positive maxPerRow falls back to DefaultMaxUnitsPerRow.
func NewBlockGrid(b domain.Breakdown, maxPerRow int) BlockGrid {
	if maxPerRow <= 0 {
		maxPerRow = DefaultMaxUnitsPerRow
	}

	grid := BlockGrid{Groups: []BlockGroup{}, TotalUnits: b.TotalUnits()}
	if grid.TotalUnits == 0 {
		grid.Message = "Amount too small to visualize"
		return grid
	}

	for _, e := range b.Entries {
		if e.Count <= 0 {
			continue
		}
		d := e.Denomination
		block := Block{Color: d.Color}
		if d.Value.GreaterThanOrEqual(labelThreshold) {
			block.Label = d.Value.String()
		}

		group := BlockGroup{
			Header: fmt.Sprintf("%s (%d pcs):", d.Name, e.Count),
			Color:  d.Color,
			Count:  e.Count,
		}
		placed := int64(0)
		for placed < e.Count && len(group.Rows) < MaxRowsPerGroup {
			rowLen := min(int64(maxPerRow), e.Count-placed)
			row := make([]Block, rowLen)
			for i := range row {
				row[i] = block
			}
			group.Rows = append(group.Rows, row)
			placed += rowLen
		}
		if placed < e.Count {
			group.Hidden = e.Count - placed
			group.More = fmt.Sprintf("… and %d more", group.Hidden)
		}
		grid.Groups = append(grid.Groups, group)
	}

	grid.Summary = fmt.Sprintf("Total pieces: %d", grid.TotalUnits)
	return grid
}
