package session

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	choiceGetUsers        = "Get Users"
	choiceNewUser         = "New User"
	choiceSelectUser      = "Select User"
	choiceDisplayAccounts = "Display Accounts"
	choiceWithdraw        = "Withdraw"
	choiceDeposit         = "Deposit"
	choiceNewAccount      = "New Account"
	choiceHistory         = "History"
	choiceQuit            = "Quit"
)

// Menu is a numbered list of selections.
type Menu struct {
	title      string
	selections []string
}

// NewMenu creates a menu with the given selections, numbered from 1.
func NewMenu(title string, selections ...string) *Menu {
	return &Menu{title: title, selections: selections}
}

// mainMenu lists History after Quit so Quit keeps number 8.
func mainMenu(title string) *Menu {
	return NewMenu(title,
		choiceGetUsers,
		choiceNewUser,
		choiceSelectUser,
		choiceDisplayAccounts,
		choiceWithdraw,
		choiceDeposit,
		choiceNewAccount,
		choiceQuit,
		choiceHistory,
	)
}

// Lookup resolves input given as a selection number or a case-insensitive name.
func (m *Menu) Lookup(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(m.selections) {
			return "", false
		}
		return m.selections[n-1], true
	}
	for _, sel := range m.selections {
		if strings.EqualFold(sel, input) {
			return sel, true
		}
	}
	return "", false
}

func (m *Menu) String() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.title)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", len(m.title)))
		b.WriteString("\n")
	}
	for i, sel := range m.selections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, sel)
	}
	return b.String()
}
