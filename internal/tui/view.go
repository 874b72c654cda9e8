package tui

import (
	"fmt"
	"strings"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

// View renders the split table. The frozen left pane never moves
// horizontally; the header, every body row, and the totals footer all slice
// their right region with the same viewport offset, so the three panes stay
// column-aligned at any scroll position.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.titleLine())
	b.WriteByte('\n')
	b.WriteString(m.headerLine())
	b.WriteByte('\n')

	itemAt := make(map[int]int, len(m.displayRow))
	for itemIdx, bodyIdx := range m.displayRow {
		itemAt[bodyIdx] = itemIdx
	}

	end := m.vp.OffsetY + m.vp.Height
	if end > len(m.bodyRows) {
		end = len(m.bodyRows)
	}
	for i := m.vp.OffsetY; i < end && i >= 0; i++ {
		b.WriteString(m.bodyLine(m.bodyRows[i], itemAt[i], i))
		b.WriteByte('\n')
	}

	b.WriteString(m.footerLine())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("↑/↓/←/→ move · enter next cell · del clear · ctrl+s save · ctrl+r reload · esc quit"))
	return b.String()
}

func (m *Model) titleLine() string {
	title := string(m.table) + " plan"
	for _, row := range m.grid.Taxonomy().Rows() {
		if row.Kind == planning.RowTitle {
			title = row.Label
			break
		}
	}
	info := fmt.Sprintf("plan %s · branch %s", m.plan.PlanID, m.plan.BranchID)
	if m.plan.Period != "" {
		info += " · " + m.plan.Period
	}
	return titleStyle.Render(title) + "  " + statusStyle.Render(info)
}

func (m *Model) headerLine() string {
	frozen := padRight("Code", codeWidth) + " " + padRight("Item", labelWidth) + " "
	cells := make([]string, 0, len(m.units)+1)
	for _, u := range m.units {
		cells = append(cells, u.Name)
	}
	cells = append(cells, "Total")
	return headerRowStyle.Render(frozen + m.window(joinCells(cells)))
}

func (m *Model) bodyLine(row planning.LineItem, itemIdx, bodyIdx int) string {
	frozen := padRight(truncate(row.Code, codeWidth), codeWidth) + " " +
		padRight(truncate(row.Label, labelWidth), labelWidth) + " "

	switch row.Kind {
	case planning.RowSection:
		return sectionStyle.Render(frozen) + m.window("")

	case planning.RowSubtotal:
		st := m.totals.SectionSubtotal[row.Code]
		cells := make([]string, 0, len(m.grid.UnitIDs())+1)
		for _, id := range m.grid.UnitIDs() {
			cells = append(cells, planning.FormatAmount(st.PerColumn[id], m.maxDecimals))
		}
		cells = append(cells, planning.FormatAmount(st.Total, m.maxDecimals))
		return subtotalStyle.Render(frozen + m.window(joinCells(cells)))

	case planning.RowItem:
		cells := make([]string, 0, len(m.grid.UnitIDs())+1)
		for _, id := range m.grid.UnitIDs() {
			cells = append(cells, m.grid.Get(row.Code, id))
		}
		cells = append(cells, planning.FormatAmount(m.totals.RowTotal[row.Code], m.maxDecimals))
		win := m.window(joinCells(cells))
		if itemIdx == m.pos.Row && bodyIdx == m.displayRow[m.pos.Row] {
			win = m.highlightActive(win)
		}
		return frozen + win

	default:
		return frozen + m.window("")
	}
}

func (m *Model) footerLine() string {
	label := "Total"
	for _, row := range m.grid.Taxonomy().Rows() {
		if row.Kind == planning.RowGrandTotal {
			label = row.Label
			break
		}
	}
	frozen := padRight("", codeWidth) + " " + padRight(truncate(label, labelWidth), labelWidth) + " "
	cells := make([]string, 0, len(m.grid.UnitIDs())+1)
	for _, id := range m.grid.UnitIDs() {
		cells = append(cells, planning.FormatAmount(m.totals.ColumnTotal[id], m.maxDecimals))
	}
	cells = append(cells, planning.FormatAmount(m.totals.GrandTotal, m.maxDecimals))
	return footerStyle.Render(frozen + m.window(joinCells(cells)))
}

func (m *Model) statusLine() string {
	state := statusStyle.Render("[" + string(m.gateway.State()) + "] ")
	if m.statusErr {
		return state + statusErrStyle.Render(m.status)
	}
	return state + statusStyle.Render(m.status)
}

// window slices the scrollable content at the shared horizontal offset and
// pads to the inner width.
func (m *Model) window(content string) string {
	inner := m.vp.InnerWidth()
	r := []rune(content)
	start := m.vp.OffsetX
	if start > len(r) {
		start = len(r)
	}
	end := start + inner
	if end > len(r) {
		end = len(r)
	}
	return padRight(string(r[start:end]), inner)
}

// highlightActive styles the active cell's span inside an already-sliced
// window.
func (m *Model) highlightActive(win string) string {
	r := []rune(win)
	start := m.pos.Col*colWidth - m.vp.OffsetX
	end := start + colWidth
	if start < 0 {
		start = 0
	}
	if end > len(r) {
		end = len(r)
	}
	if start >= end {
		return win
	}
	return string(r[:start]) + activeCellStyle.Render(string(r[start:end])) + string(r[end:])
}

// joinCells pads each value right-aligned into a fixed-width column.
func joinCells(cells []string) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(padLeft(truncate(c, colWidth-1), colWidth))
	}
	return b.String()
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}

func padRight(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(r))
}

func padLeft(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(r)) + s
}
