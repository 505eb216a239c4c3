package bank

import (
	"fmt"
	"strings"

	"github.com/nerdbank/teller/internal/customer"
)

const directoryLegend = "(Last), (First) : (User_id)"

// Directory lists all customers, one "Last, First : id" row each.
func (b *Bank) Directory() string {
	lines := []string{directoryLegend, strings.Repeat("-", len(directoryLegend))}
	for _, c := range b.customers {
		lines = append(lines, fmt.Sprintf("%s, %s : %d", c.LastName(), c.FirstName(), c.ID()))
	}
	return strings.Join(lines, "\n")
}

// Statement renders a titled balance report for c.
func (b *Bank) Statement(c *customer.Customer) string {
	title := fmt.Sprintf("%s %s's Accounts", c.FirstName(), c.LastName())
	return strings.Join([]string{
		title,
		strings.Repeat("-", len(title)),
		c.AllBalancesReport(),
	}, "\n")
}

// Profile renders the customer's details followed by their statement.
func (b *Bank) Profile(c *customer.Customer) string {
	return fmt.Sprintf("%s %s\nAge: %d User_id: %d\n\n%s", c.FirstName(), c.LastName(), c.Age(), c.ID(), b.Statement(c))
}
