package components

import (
	"errors"
	"testing"

	"github.com/Veraticus/caisse/internal/model"
	"github.com/Veraticus/caisse/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func send(m AddTransactionModel, msgs ...tea.Msg) AddTransactionModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestAddTransactionModel_Defaults(t *testing.T) {
	m := NewAddTransactionModel([]string{"Alice", "Bob"}, themes.Default)

	assert.Equal(t, FieldAmount, m.Focused())
	v := m.Values()
	assert.Equal(t, model.KindExpense, v.Kind)
	assert.Empty(t, v.Amount)
	assert.Empty(t, v.User)
	assert.Empty(t, v.Reason)
}

func TestAddTransactionModel_FieldNavigation(t *testing.T) {
	m := NewAddTransactionModel(nil, themes.Default)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldUser, m.Focused())
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldReason, m.Focused())
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldKind, m.Focused())
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldReason, m.Focused())
}

func TestAddTransactionModel_Typing(t *testing.T) {
	m := NewAddTransactionModel([]string{"Alice", "Bob"}, themes.Default)

	m = send(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12.5")},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Coffee")},
	)

	v := m.Values()
	assert.Equal(t, "12.5", v.Amount)
	assert.Equal(t, "Bob", v.User)
	assert.Equal(t, "Coffee", v.Reason)
}

func TestAddTransactionModel_UserCycleWraps(t *testing.T) {
	m := NewAddTransactionModel([]string{"Alice", "Bob"}, themes.Default)
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Bob", m.Values().User)
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Alice", m.Values().User)
}

func TestAddTransactionModel_KindToggle(t *testing.T) {
	m := NewAddTransactionModel(nil, themes.Default)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, model.KindDeposit, m.Values().Kind)

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldKind, m.Focused())
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, model.KindExpense, m.Values().Kind)
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, model.KindDeposit, m.Values().Kind)
}

func TestAddTransactionModel_SetUsersKeepsSelection(t *testing.T) {
	m := NewAddTransactionModel([]string{"Alice", "Bob"}, themes.Default)
	m = send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Bob", m.Values().User)

	m.SetUsers([]string{"Bob", "Carol"})
	assert.Equal(t, "Bob", m.Values().User)

	m.SetUsers([]string{"Carol"})
	assert.Empty(t, m.Values().User)
}

func TestAddTransactionModel_View(t *testing.T) {
	m := NewAddTransactionModel([]string{"Alice"}, themes.Default)

	view := m.View(false, nil)
	assert.Contains(t, view, "New entry")
	assert.Contains(t, view, "Expense (-)")
	assert.Contains(t, view, "Deposit (+)")
	assert.Contains(t, view, "Who are you?")
	assert.Contains(t, view, "Confirm")

	view = m.View(true, errors.New("amount is required"))
	assert.Contains(t, view, "Saving...")
	assert.Contains(t, view, "Amount is required")
}
