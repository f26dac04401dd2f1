package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dateLayout renders dates day first.
const dateLayout = "02/01/2006"

// View renders the UI.
func (m Model) View() string {
	if m.session.Loading() && len(m.session.Transactions()) == 0 {
		return m.renderLoading()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	if m.tab == TabTransactions {
		body = m.renderTransactions(m.height - lipgloss.Height(header) - lipgloss.Height(footer))
	} else {
		body = m.renderTeam()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, header, body)

	if m.session.Phase() != ledger.PhaseClosed {
		screen = m.renderOverlay()
	}

	if banner, ok := m.session.Banner(); ok {
		screen = lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Banner.Render("! "+banner.Message)),
			screen,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, screen, footer)
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.theme.Primary).Render(m.spinner.View()),
		"",
		m.theme.Muted.Render("Loading the cash box..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("◆ Shared cash box")

	transactions := m.theme.TabInactive.Render("Transactions")
	team := m.theme.TabInactive.Render(fmt.Sprintf("Team (%d)", len(m.session.Members())))
	if m.tab == TabTransactions {
		transactions = m.theme.TabActive.Render("Transactions")
	} else {
		team = m.theme.TabActive.Render(fmt.Sprintf("Team (%d)", len(m.session.Members())))
	}

	status := ""
	if m.session.Loading() {
		status = " " + m.spinner.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title+status,
		lipgloss.JoinHorizontal(lipgloss.Bottom, transactions, team),
		"",
	)
}

func (m Model) renderBalance() string {
	balance := model.FormatMoney(m.session.Balance(), m.config.Currency)
	card := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.BalanceLabel.Render("CURRENT BALANCE"),
		m.theme.BalanceValue.Render(balance),
	)
	return m.theme.BalanceCard.Width(min(m.width-2, 48)).Render(card)
}

// renderTransactions renders the balance card and as many transaction rows
// as fit in height, starting at the scroll offset.
func (m Model) renderTransactions(height int) string {
	balance := m.renderBalance()
	lines := []string{balance, ""}
	used := lipgloss.Height(balance) + 1

	txns := m.session.Transactions()
	if len(txns) == 0 {
		lines = append(lines, m.theme.Muted.Render("No transactions yet. Press n to add one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := min(m.width-2, 64)
	for i := m.scroll; i < len(txns); i++ {
		row := m.renderTransaction(txns[i], width)
		if height > 0 && used+lipgloss.Height(row) > height {
			remaining := len(txns) - i
			lines = append(lines, m.theme.Muted.Render(fmt.Sprintf("  … %d more", remaining)))
			break
		}
		lines = append(lines, row)
		used += lipgloss.Height(row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderTransaction(t model.Transaction, width int) string {
	style := m.theme.Expense
	indicator := "−"
	if t.IsDeposit() {
		style = m.theme.Deposit
		indicator = "+"
	}

	date := "unknown date"
	if t.HasDate() {
		date = t.OccurredAt.Local().Format(dateLayout)
	}

	amount := style.Render(model.FormatSigned(t, m.config.Currency))
	left := lipgloss.JoinHorizontal(
		lipgloss.Top,
		style.Render(indicator),
		"  ",
		lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Bold.Render(t.Reason),
			m.theme.Muted.Render(strings.ToUpper(t.User)+" • "+date),
		),
	)

	inner := width - 4
	gap := inner - lipgloss.Width(left) - lipgloss.Width(amount)
	if gap < 1 {
		gap = 1
	}

	return m.theme.Row.Width(width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), amount),
	)
}

// renderTeam renders the members as a two-column grid.
func (m Model) renderTeam() string {
	members := m.session.Members()
	if len(members) == 0 {
		return m.theme.Muted.Render("No team members.")
	}

	cardWidth := max(16, min(30, (m.width-4)/2))
	var rows []string
	for i := m.scroll * 2; i < len(members); i += 2 {
		cells := []string{m.renderMember(members[i], cardWidth)}
		if i+1 < len(members) {
			cells = append(cells, " ", m.renderMember(members[i+1], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderMember(member model.Member, width int) string {
	// Names are cut by display width so double-width runes stay aligned.
	name := ansi.Truncate(member.Name, max(1, width-8), "…")
	return m.theme.MemberCard.Width(width).Render(
		m.theme.Avatar.Render(member.Initial()) + " " + m.theme.Bold.Render(name),
	)
}

func (m Model) renderOverlay() string {
	form := m.form.View(m.session.Phase() == ledger.PhaseSubmitting, m.session.FormError())
	return lipgloss.Place(m.width, max(lipgloss.Height(form), m.height-2), lipgloss.Center, lipgloss.Center, form)
}

func (m Model) renderFooter() string {
	bindings := m.keymap.ShortHelp()
	if m.session.Phase() != ledger.PhaseClosed {
		bindings = m.keymap.FormHelp()
	}
	return m.theme.Help.Render(helpLine(bindings))
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
