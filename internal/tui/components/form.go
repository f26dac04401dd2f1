package components

import (
	"strings"

	"github.com/Veraticus/caisse/internal/ledger"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/Veraticus/caisse/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormField identifies a field of the add-transaction form.
type FormField int

// Form fields in tab order.
const (
	FieldKind FormField = iota
	FieldAmount
	FieldUser
	FieldReason
	fieldCount
)

// AddTransactionModel is the add-transaction overlay. It owns the widgets;
// the ledger session owns the values.
type AddTransactionModel struct {
	theme     themes.Theme
	amount    textinput.Model
	reason    textinput.Model
	kind      model.Kind
	users     []string
	userIndex int
	focus     FormField
	width     int
}

// NewAddTransactionModel creates an empty form offering users as authors.
func NewAddTransactionModel(users []string, theme themes.Theme) AddTransactionModel {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Prompt = ""

	reason := textinput.New()
	reason.Placeholder = "Reason..."
	reason.CharLimit = 120
	reason.Prompt = ""

	m := AddTransactionModel{
		theme:     theme,
		amount:    amount,
		reason:    reason,
		kind:      model.KindExpense,
		users:     users,
		userIndex: -1,
	}
	m.Resize(44)
	m.setFocus(FieldAmount)
	return m
}

// Values returns the current field values.
func (m AddTransactionModel) Values() ledger.Form {
	f := ledger.Form{
		Kind:   m.kind,
		Amount: m.amount.Value(),
		Reason: m.reason.Value(),
	}
	if m.userIndex >= 0 && m.userIndex < len(m.users) {
		f.User = m.users[m.userIndex]
	}
	return f
}

// Focused returns the focused field.
func (m AddTransactionModel) Focused() FormField {
	return m.focus
}

// SetUsers replaces the offered users, keeping the selection if the selected
// name is still present.
func (m *AddTransactionModel) SetUsers(users []string) {
	selected := m.Values().User
	m.users = users
	m.userIndex = -1
	for i, u := range users {
		if u == selected {
			m.userIndex = i
			break
		}
	}
}

// Resize sets the form width.
func (m *AddTransactionModel) Resize(width int) {
	m.width = width
	m.amount.Width = max(4, width-12)
	m.reason.Width = max(4, width-12)
}

func (m *AddTransactionModel) setFocus(field FormField) {
	m.focus = field
	m.amount.Blur()
	m.reason.Blur()
	switch field {
	case FieldAmount:
		m.amount.Focus()
	case FieldReason:
		m.reason.Focus()
	}
}

func (m *AddTransactionModel) cycleUser(delta int) {
	if len(m.users) == 0 {
		return
	}
	if m.userIndex < 0 {
		if delta > 0 {
			m.userIndex = 0
		} else {
			m.userIndex = len(m.users) - 1
		}
		return
	}
	m.userIndex = (m.userIndex + delta + len(m.users)) % len(m.users)
}

// Update handles field navigation and editing. Submit and cancel are left to
// the parent.
func (m AddTransactionModel) Update(msg tea.Msg) (AddTransactionModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "ctrl+t":
		m.kind = m.kind.Toggle()
		return m, nil
	}

	switch m.focus {
	case FieldKind:
		switch keyMsg.String() {
		case "left", "h", "-":
			m.kind = model.KindExpense
		case "right", "l", "+":
			m.kind = model.KindDeposit
		case " ":
			m.kind = m.kind.Toggle()
		}
		return m, nil
	case FieldUser:
		switch keyMsg.String() {
		case "left", "h":
			m.cycleUser(-1)
		case "right", "l", " ":
			m.cycleUser(1)
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m AddTransactionModel) updateInputs(msg tea.Msg) (AddTransactionModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	case FieldReason:
		m.reason, cmd = m.reason.Update(msg)
	}
	return m, cmd
}

// View renders the form. formErr is the last validation error, if any.
func (m AddTransactionModel) View(submitting bool, formErr error) string {
	t := m.theme

	expense := t.KindIdle.Render("Expense (-)")
	deposit := t.KindIdle.Render("Deposit (+)")
	if m.kind == model.KindDeposit {
		deposit = t.KindSelected.Foreground(t.Success).Render("Deposit (+)")
	} else {
		expense = t.KindSelected.Foreground(t.Error).Render("Expense (-)")
	}

	user := t.Muted.Render("Who are you?")
	if v := m.Values().User; v != "" {
		user = t.Bold.Render("‹ " + v + " ›")
	} else if len(m.users) == 0 {
		user = t.Muted.Render("No team members")
	}

	// Overlay padding is 6 columns and each field has a 2-column border.
	fieldWidth := m.width - 8
	rows := []string{
		t.Title.Render("New entry"),
		"",
		m.field(FieldKind, fieldWidth, lipgloss.JoinHorizontal(lipgloss.Top, expense, " ", deposit)),
		m.field(FieldAmount, fieldWidth, m.amount.View()),
		m.field(FieldUser, fieldWidth, user),
		m.field(FieldReason, fieldWidth, m.reason.View()),
	}

	if formErr != nil {
		rows = append(rows, t.FormError.Render(capitalize(formErr.Error())))
	}

	confirm := "Confirm"
	if submitting {
		confirm = "Saving..."
	}
	button := t.KindSelected.Background(t.Error).Foreground(lipgloss.Color("#ffffff"))
	if m.kind == model.KindDeposit {
		button = button.Background(t.Success)
	}
	rows = append(rows, "", button.Render(confirm))

	return t.Overlay.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m AddTransactionModel) field(f FormField, width int, content string) string {
	style := m.theme.Field
	if m.focus == f {
		style = m.theme.FieldFocused
	}
	return style.Width(width).Render(content)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
