package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	// cellWidth is the number of columns each slot occupies, gap included.
	cellWidth     = 10
	inventoryRows = inventorySize / menu.Columns
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.host.Active() == 0 {
		return ""
	}
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.host.Title(), style: styles.Title})
	rows := m.host.Size() / menu.Columns
	for row := 0; row < rows; row++ {
		lines = append(lines, styledLine{text: m.renderRow(row * menu.Columns), raw: true})
	}
	lines = append(lines, styledLine{text: strings.Repeat("─", menu.Columns*cellWidth-1), style: styles.Separator})
	for row := 0; row < inventoryRows; row++ {
		lines = append(lines, styledLine{text: m.renderRow(m.host.Size() + row*menu.Columns), raw: true})
	}
	lines = append(lines, styledLine{text: "cursor: " + describe(m.host.Cursor()), style: styles.Cursor})

	var status styledLine
	switch {
	case m.errMsg != "":
		status = styledLine{text: m.errMsg, style: styles.Error}
	case m.currentInfo() != "":
		status = styledLine{text: m.currentInfo(), style: styles.Info}
	default:
		status = styledLine{text: m.describeSelection(), style: styles.Info}
	}
	lines = append(lines, status)
	if m.showFooter {
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) renderRow(first int) string {
	cells := make([]string, menu.Columns)
	for col := range cells {
		raw := first + col
		c := m.host.Slot(raw)
		style := styles.Cell
		switch {
		case raw == m.selected:
			style = styles.SelectedCell
		case slices.Contains(m.marked, raw):
			style = styles.MarkedCell
		case c.IsEmpty():
			style = styles.EmptyCell
		case c.Glint:
			style = styles.GlintCell
		}
		cells[col] = style.Render(padCell(cellLabel(c)))
	}
	return strings.Join(cells, " ")
}

func cellLabel(c menu.Content) string {
	if c.IsEmpty() {
		return "·"
	}
	label := c.Label()
	if c.Amount > 1 {
		label = fmt.Sprintf("%s×%d", label, c.Amount)
	}
	return label
}

func padCell(label string) string {
	width := cellWidth - 1
	if lipgloss.Width(label) > width {
		label = truncate.StringWithTail(label, uint(width), "…")
	}
	if pad := width - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	return label
}

func describe(c menu.Content) string {
	if c.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s ×%d", c.Label(), c.Amount)
}

func (m *Model) describeSelection() string {
	c := m.host.Slot(m.selected)
	region := "menu"
	slot := m.selected
	if m.host.Region(m.selected) == menu.RegionOther {
		region = "inventory"
		slot -= m.host.Size()
	}
	text := fmt.Sprintf("%s slot %d: %s", region, slot, describe(c))
	if len(c.Lore) > 0 {
		text += " | " + strings.Join(c.Lore, " ")
	}
	return text
}

// slotAt maps a terminal cell to a raw slot of the current view.
func (m *Model) slotAt(x, y int) int {
	if x < 0 || y < 0 || x%cellWidth == cellWidth-1 {
		return outsideSlot
	}
	col := x / cellWidth
	if col >= menu.Columns {
		return outsideSlot
	}
	rows := m.host.Size() / menu.Columns
	if row := y - 1; row >= 0 && row < rows {
		return row*menu.Columns + col
	}
	if row := y - rows - 2; row >= 0 && row < inventoryRows {
		return m.host.Size() + row*menu.Columns + col
	}
	return outsideSlot
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
