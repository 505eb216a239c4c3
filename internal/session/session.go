// Package session runs the interactive teller loop: it reads menu choices and
// request lines, calls the bank and the transaction dispatcher, and prints
// their outcomes.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nerdbank/teller/internal/bank"
	"github.com/nerdbank/teller/internal/customer"
	"github.com/nerdbank/teller/internal/ledger"
	"github.com/nerdbank/teller/internal/log"
	"github.com/nerdbank/teller/internal/model"
	"github.com/nerdbank/teller/internal/teller"
)

const (
	backToMenu   = "returning to main menu."
	noActiveUser = "No active user account"
	backKey      = "B"
	prompt       = "> "
)

// Options controls how the session talks to the user.
type Options struct {
	// Interactive prints the menu and a prompt before each read.
	Interactive bool
	// Backdoor prints every customer's profile before the first menu.
	Backdoor bool
}

// Session is one teller sitting at the terminal.
type Session struct {
	bank     *bank.Bank
	ledger   *ledger.Ledger
	out      io.Writer
	opts     Options
	menu     *Menu
	selected *customer.Customer

	lines <-chan string
	errc  <-chan error
	in    io.Reader
}

// New creates a session reading from in and writing to out. Every dispatched
// transaction is recorded in l.
func New(b *bank.Bank, l *ledger.Ledger, in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		bank:   b,
		ledger: l,
		in:     in,
		out:    out,
		opts:   opts,
		menu:   mainMenu(b.Name()),
	}
}

// Selected returns the active customer, or nil.
func (s *Session) Selected() *customer.Customer { return s.selected }

// Run loops until Quit, end of input, or ctx is cancelled. It returns nil for
// Quit and end of input.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lines, s.errc = scanLines(ctx, s.in)

	if s.opts.Backdoor {
		for _, c := range s.bank.Customers() {
			s.printf("%s\n\n", s.bank.Profile(c))
		}
	}

	for {
		if s.opts.Interactive {
			s.printf("%s", s.menu)
		}
		input, err := s.read(ctx)
		if err != nil {
			return endOfInput(err)
		}

		choice, ok := s.menu.Lookup(input)
		if !ok {
			s.printf("Unrecognized selection, please try again.\n")
			continue
		}
		if choice == choiceQuit {
			return nil
		}
		if err := s.dispatch(ctx, choice); err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, choice string) error {
	log.Debug("menu choice", "choice", choice)
	switch choice {
	case choiceGetUsers:
		s.printf("\n%s\n\n", s.bank.Directory())
		return nil
	case choiceNewUser:
		return s.newUser(ctx)
	case choiceSelectUser:
		return s.selectUser(ctx)
	}

	if s.selected == nil {
		s.fail(noActiveUser)
		return nil
	}
	switch choice {
	case choiceDisplayAccounts:
		s.printf("\n%s\n\n", s.bank.Statement(s.selected))
		return nil
	case choiceWithdraw:
		return s.transact(ctx, model.OperationWithdraw)
	case choiceDeposit:
		return s.transact(ctx, model.OperationDeposit)
	case choiceNewAccount:
		return s.newAccount(ctx)
	case choiceHistory:
		s.history()
		return nil
	default:
		panic(fmt.Sprintf("session: unhandled menu choice %q", choice))
	}
}

func (s *Session) newUser(ctx context.Context) error {
	s.printf("User Account creation mode:\nProvide name and age by 'first:last:age': (B for back)\nex. 'John:Smith:21'\n")
	input, back, err := s.readSub(ctx)
	if err != nil || back {
		return err
	}

	fields, err := teller.Split(input, 3)
	if err != nil {
		s.fail("Incorrect number of values provided")
		return nil
	}
	age, err := strconv.Atoi(fields[2])
	if err != nil {
		s.fail("Invalid age field")
		return nil
	}
	c, err := s.bank.RegisterCustomer(fields[0], fields[1], age)
	if err != nil {
		s.fail(capitalize(err.Error()))
		return nil
	}
	s.printf("\nUser account added successfully. User_id: %d\n\n", c.ID())
	return nil
}

func (s *Session) selectUser(ctx context.Context) error {
	s.printf("\n%s\n\nEnter a User_ID from the above list: (B for back)\n", s.bank.Directory())
	input, back, err := s.readSub(ctx)
	if err != nil || back {
		return err
	}

	pos, err := strconv.Atoi(input)
	if err != nil {
		s.fail("Invalid ID")
		return nil
	}
	c, err := s.bank.Select(pos)
	if err != nil {
		s.fail("Invalid ID")
		return nil
	}
	s.selected = c
	log.Info("selected customer", "customer_id", c.ID())
	s.printf("\nSelected %s %s.\n\n", c.FirstName(), c.LastName())
	return nil
}

func (s *Session) transact(ctx context.Context, op model.Operation) error {
	s.printf("\n%s\n\n", s.bank.Statement(s.selected))
	s.printf("%s mode:\nSelect account by 'type:number:amt': (B for back)\nex. '401k:1:400.00'\n", op.Title())
	input, back, err := s.readSub(ctx)
	if err != nil || back {
		return err
	}

	req, err := teller.ParseRequest(input)
	if err != nil {
		s.fail("Incorrect number of values provided")
		return nil
	}
	res := req.Perform(s.selected, op)
	s.ledger.Record(req.Transaction(s.selected, op, res))
	s.fail(res.Message(op))
	return nil
}

func (s *Session) newAccount(ctx context.Context) error {
	s.printf("Account creation mode:\nProvide type & initial amount by 'type:amt': (B for back)\nex. '401k:400.00'\n")
	input, back, err := s.readSub(ctx)
	if err != nil || back {
		return err
	}

	fields, err := teller.Split(input, 2)
	if err != nil {
		s.fail("Incorrect number of values provided")
		return nil
	}
	amount, err := model.ParseAmount(fields[1])
	if err != nil {
		s.fail("Amount must be a valid number")
		return nil
	}
	if amount.IsNegative() {
		s.fail("Initial amount must be positive")
		return nil
	}
	t, ok := model.ParseAccountType(fields[0])
	if !ok {
		s.fail("Invalid account type")
		return nil
	}
	if _, err := s.bank.CreateAccount(s.selected, t, amount); err != nil {
		s.fail(capitalize(err.Error()))
		return nil
	}
	s.printf("\nAccount added successfully.\n\n")
	return nil
}

func (s *Session) history() {
	txs := s.ledger.ForCustomer(s.selected.ID())
	if len(txs) == 0 {
		s.printf("\nNo transactions recorded for %s %s.\n\n", s.selected.FirstName(), s.selected.LastName())
		return
	}
	s.printf("\n")
	for _, tx := range txs {
		s.printf("%s\n", formatHistoryLine(tx))
	}
	s.printf("\n")
}

func formatHistoryLine(tx model.Transaction) string {
	line := fmt.Sprintf("%s %s %s %s #%s %s: %s",
		tx.ID, tx.Time.Format("2006-01-02 15:04:05"), tx.Operation, tx.AccountType, tx.AccountNumber, tx.Amount, tx.Outcome)
	if tx.Detail != "" {
		line += " (" + tx.Detail + ")"
	}
	if tx.HasBalance {
		line += ", balance " + model.FormatMoney(tx.Balance)
	}
	return line
}

// fail prints msg followed by the return-to-menu notice.
func (s *Session) fail(msg string) {
	s.printf("\n%s, %s\n\n", msg, backToMenu)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// read returns the next non-blank trimmed line.
func (s *Session) read(ctx context.Context) (string, error) {
	for {
		if s.opts.Interactive {
			s.printf(prompt)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case text, ok := <-s.lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return "", err
				}
				if err := <-s.errc; err != nil {
					return "", fmt.Errorf("reading input: %w", err)
				}
				return "", io.EOF
			}
			if text = strings.TrimSpace(text); text != "" {
				return text, nil
			}
		}
	}
}

// readSub reads a sub-prompt answer and reports whether the user asked to go back.
func (s *Session) readSub(ctx context.Context) (string, bool, error) {
	input, err := s.read(ctx)
	if err != nil {
		return "", false, err
	}
	return input, strings.EqualFold(input, backKey), nil
}

func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			errc <- err
			close(lines)
		}()
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err = sc.Err()
	}()
	return lines, errc
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
