package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/karpador/trombone/internal/sidebar"
	"github.com/karpador/trombone/internal/theme"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultContentWidth = 48
	currentMarker       = "▌"
	separatorRune       = "─"
	appTitle            = "Trombone"
)

// View implements tea.Model.
func (m *Model) View() string {
	bottom := m.bottomLines()
	bodyHeight := -1
	if m.height > 0 {
		bodyHeight = m.height - len(bottom)
		if bodyHeight < 1 {
			bodyHeight = 1
		}
	}
	sideWidth := m.sidebarColumnWidth()
	contentWidth := m.contentColumnWidth(sideWidth)

	sideStyle := lipgloss.NewStyle()
	if styles.Sidebar != nil {
		sideStyle = *styles.Sidebar
	}
	sideInner := max(sideWidth-sideStyle.GetHorizontalFrameSize(), 1)
	sideStyle = sideStyle.Width(sideInner + sideStyle.GetHorizontalPadding())
	contentStyle := lipgloss.NewStyle()
	if styles.Content != nil {
		contentStyle = *styles.Content
	}
	contentInner := max(contentWidth-contentStyle.GetHorizontalFrameSize(), 1)
	contentStyle = contentStyle.Width(contentInner + contentStyle.GetHorizontalPadding())

	side := limitHeight(m.sidebarLines(sideInner), bodyHeight)
	content := limitHeight(m.contentLines(contentInner), bodyHeight)
	if bodyHeight > 0 {
		sideStyle = sideStyle.Height(bodyHeight)
		contentStyle = contentStyle.Height(bodyHeight)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sideStyle.Render(strings.Join(side, "\n")),
		contentStyle.Render(strings.Join(content, "\n")),
	)
	if len(bottom) == 0 {
		return body
	}
	return body + "\n" + strings.Join(bottom, "\n")
}

func (m *Model) sidebarColumnWidth() int {
	w := m.sidebarWidth
	if m.width > 0 && w > m.width/2 {
		w = m.width / 2
	}
	if w < 4 {
		w = 4
	}
	return w
}

func (m *Model) contentColumnWidth(sideWidth int) int {
	if m.width <= 0 {
		return defaultContentWidth
	}
	w := m.width - sideWidth
	if w < 1 {
		w = 1
	}
	return w
}

// sidebarLines renders the header, the follow-requests banner and the
// visible rows, with a separator line before each group boundary.
func (m *Model) sidebarLines(width int) []string {
	lines := make([]string, 0, m.sidebar.Len()+4)
	lines = append(lines, render(styles.SidebarHeader, fitText(m.headerText(), width)))
	if m.followRequests > 0 {
		lines = append(lines, render(styles.Banner, fitText(followRequestsText(m.followRequests), width)))
	}
	items := m.sidebar.Items()
	start, end := m.rows.Window(m.maxVisibleRows())
	for i := start; i < end && i < len(items); i++ {
		if m.sidebar.HasSeparator(i) {
			lines = append(lines, render(styles.Separator, strings.Repeat(separatorRune, max(width, 1))))
		}
		lines = append(lines, m.renderRow(items[i], i, width))
	}
	return lines
}

func (m *Model) headerText() string {
	if acct, ok := m.accounts.Current(); ok {
		return acct.Label()
	}
	return appTitle
}

func followRequestsText(n uint64) string {
	if n == 1 {
		return "1 Follow Request"
	}
	return fmt.Sprintf("%d Follow Requests", n)
}

func (m *Model) renderRow(item sidebar.Item, idx, width int) string {
	current := item.Place == m.sidebar.Current()
	marker := " "
	if current {
		marker = currentMarker
	}
	prefix := marker + theme.Glyph(item.Place.Icon()) + " "
	badge := ""
	if sidebar.BadgeVisible(item) {
		badge = " " + sidebar.BadgeLabel(item) + " "
	}
	avail := width - ansi.StringWidth(prefix) - ansi.StringWidth(badge)
	title := fitText(item.Place.Title(), max(avail, 1))
	pad := width - ansi.StringWidth(prefix) - ansi.StringWidth(title) - ansi.StringWidth(badge)
	if pad < 0 {
		pad = 0
	}

	style := styles.Item
	if current {
		style = styles.CurrentItem
	}
	if idx == m.rows.Index && (m.mode == ModeSidebar || m.mode == ModeFind) {
		style = styles.SelectedItem
	}
	text := render(style, prefix+title+strings.Repeat(" ", pad))
	if badge != "" {
		text += render(styles.Badge, badge)
	}
	return text
}

func (m *Model) contentLines(width int) []string {
	switch m.mode {
	case ModeMenu:
		return m.menuLines(width)
	case ModeAccounts:
		return m.accountLines(width)
	case ModeHelp:
		return m.helpLines(width)
	}
	lines := []string{render(styles.ContentTitle, fitText(m.content.Title(), width)), ""}
	if n := m.sidebar.Badge(m.content); n > 0 {
		lines = append(lines, fitText(fmt.Sprintf("%d unread", n), width))
	} else {
		lines = append(lines, render(styles.Info, fitText("Nothing new here.", width)))
	}
	return lines
}

func (m *Model) menuLines(width int) []string {
	menu := m.sidebar.Menu()
	entries := menu.Entries()
	lines := []string{render(styles.MenuTitle, "Menu"), ""}
	for i, a := range entries {
		if i > 0 && menu.SectionStart(i) {
			lines = append(lines, render(styles.Separator, strings.Repeat(separatorRune, max(width-2, 1))))
		}
		label := fitText(a.Label, max(width-ansi.StringWidth(a.Accelerator)-3, 1))
		style := styles.MenuItem
		if i == m.menuRows.Index {
			style = styles.SelectedItem
		}
		line := render(style, " "+label+" ")
		if a.Accelerator != "" {
			pad := width - ansi.StringWidth(label) - ansi.StringWidth(a.Accelerator) - 2
			line += strings.Repeat(" ", max(pad, 1)) + render(styles.MenuAccelerator, a.Accelerator)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m *Model) accountLines(width int) []string {
	lines := []string{render(styles.MenuTitle, "Accounts"), ""}
	current, hasCurrent := m.accounts.Current()
	for i, acct := range m.accounts.Entries() {
		marker := "  "
		if hasCurrent && acct.ID == current.ID {
			marker = "✓ "
		}
		style := styles.MenuItem
		if i == m.accountRows.Index {
			style = styles.SelectedItem
		}
		lines = append(lines, render(style, fitText(marker+acct.Label(), width)))
	}
	style := styles.MenuItem
	if m.accountRows.Index == m.accountRowCount()-1 {
		style = styles.SelectedItem
	}
	lines = append(lines, render(style, fitText("+ "+addAccountLabel, width)))
	return lines
}

func (m *Model) helpLines(width int) []string {
	lines := []string{render(styles.MenuTitle, "Keyboard Shortcuts"), ""}
	bindings := append(m.keys.ShortHelp(), m.keys.PageUp, m.keys.PageDown, m.keys.Home, m.keys.End, m.keys.Back)
	for _, accel := range m.accels {
		bindings = append(bindings, accel.binding)
	}
	for _, b := range bindings {
		help := b.Help()
		keyCol := fmt.Sprintf("%-10s", help.Key)
		lines = append(lines, fitText(render(styles.MenuAccelerator, keyCol)+" "+help.Desc, width))
	}
	return lines
}

func (m *Model) bottomLines() []string {
	lines := []string{m.statusLine()}
	if m.mode == ModeFind {
		lines = append(lines, m.find.View())
	}
	if m.showFooter {
		lines = append(lines, render(styles.Footer, m.footerText()))
	}
	return lines
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return render(styles.Error, m.fitWidth("Error: "+m.errMsg))
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return render(styles.Error, m.fitWidth("Backend: "+msg))
	}
	if info := m.currentInfo(); info != "" {
		return render(styles.Info, m.fitWidth(info))
	}
	return ""
}

func (m *Model) footerText() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, footerHint(b))
	}
	return m.fitWidth(strings.Join(parts, "  "))
}

func footerHint(b key.Binding) string {
	help := b.Help()
	return help.Key + " " + help.Desc
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.rows.EnsureVisible(m.maxVisibleRows())
	return nil
}

// maxVisibleRows returns how many sidebar rows fit, or -1 when unbounded.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + status line
	if m.followRequests > 0 {
		used++
	}
	if m.mode == ModeFind {
		used++
	}
	if m.showFooter {
		used++
	}
	for i := 0; i < m.sidebar.Len(); i++ {
		if m.sidebar.HasSeparator(i) {
			used++
		}
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) fitWidth(text string) string {
	if m.width <= 0 {
		return text
	}
	return fitText(text, m.width)
}

func limitHeight(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []string{"…"}
	}
	trimmed := make([]string, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, "…")
}

// fitText ellipsizes text to width display cells.
func fitText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
