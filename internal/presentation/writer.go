package presentation

import (
	"fmt"
	"io"
	"strings"
)

// WriteText writes the textual breakdown, one line per denomination.
func WriteText(w io.Writer, list TextList) error {
	var sb strings.Builder
	sb.WriteString(list.Heading)
	sb.WriteString("\n")
	for _, line := range list.Lines {
		fmt.Fprintf(&sb, "  %s\n", line.Text)
	}
	if list.Message != "" {
		fmt.Fprintf(&sb, "  %s\n", list.Message)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteGrid writes the block grid using one bracketed cell per unit.
func WriteGrid(w io.Writer, grid BlockGrid) error {
	var sb strings.Builder
	if grid.Message != "" {
		sb.WriteString(grid.Message)
		sb.WriteString("\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	for _, group := range grid.Groups {
		sb.WriteString(group.Header)
		sb.WriteString("\n")
		for _, row := range group.Rows {
			cells := make([]string, len(row))
			for i, block := range row {
				if block.Label != "" {
					cells[i] = "[" + block.Label + "]"
				} else {
					cells[i] = "[■]"
				}
			}
			fmt.Fprintf(&sb, "  %s\n", strings.Join(cells, " "))
		}
		if group.More != "" {
			fmt.Fprintf(&sb, "  %s\n", group.More)
		}
	}
	sb.WriteString(grid.Summary)
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteView writes the summary, the textual breakdown and the grid.
func WriteView(w io.Writer, view View) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", view.Summary.Original, view.Summary.Scaled); err != nil {
		return err
	}
	if view.Text != nil {
		if _, err := io.WriteString(w, "\nCurrency Breakdown:\n"); err != nil {
			return err
		}
		if err := WriteText(w, *view.Text); err != nil {
			return err
		}
	}
	if view.Grid != nil {
		if _, err := io.WriteString(w, "\nVisual Representation:\n"); err != nil {
			return err
		}
		if err := WriteGrid(w, *view.Grid); err != nil {
			return err
		}
	}
	return nil
}
