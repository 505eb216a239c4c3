package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nerdbank/teller/internal/id"
	"github.com/nerdbank/teller/internal/model"
)

// Header is the CSV header for an audit log.
const Header = "txn_id,timestamp,customer_id,operation,account_type,account_number,amount,outcome,detail,balance"

const (
	numFields     = 10
	colTxnID      = 0
	colTimestamp  = 1
	colCustomerID = 2
	colOperation  = 3
	colAcctType   = 4
	colAcctNumber = 5
	colAmount     = 6
	colOutcome    = 7
	colDetail     = 8
	colBalance    = 9
)

// MarshalEntry converts a Transaction to a CSV row.
func MarshalEntry(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colTxnID] = tx.ID
	row[colTimestamp] = tx.Time.Format(time.RFC3339)
	row[colCustomerID] = strconv.Itoa(tx.CustomerID)
	row[colOperation] = string(tx.Operation)
	row[colAcctType] = tx.AccountType
	row[colAcctNumber] = tx.AccountNumber
	row[colAmount] = tx.Amount
	row[colOutcome] = tx.Outcome
	row[colDetail] = tx.Detail
	if tx.HasBalance {
		row[colBalance] = tx.Balance.StringFixed(model.Cents)
	}
	return row
}

// UnmarshalEntry converts a CSV row to a Transaction.
func UnmarshalEntry(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if _, err := id.ParseTxnID(record[colTxnID]); err != nil {
		return model.Transaction{}, err
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	customerID, err := strconv.Atoi(record[colCustomerID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing customer_id %q: %w", record[colCustomerID], err)
	}

	var balance decimal.Decimal
	hasBalance := record[colBalance] != ""
	if hasBalance {
		balance, err = decimal.NewFromString(record[colBalance])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
		}
	}

	return model.Transaction{
		ID:            record[colTxnID],
		Time:          ts,
		CustomerID:    customerID,
		Operation:     model.Operation(record[colOperation]),
		AccountType:   record[colAcctType],
		AccountNumber: record[colAcctNumber],
		Amount:        record[colAmount],
		Outcome:       record[colOutcome],
		Detail:        record[colDetail],
		Balance:       balance,
		HasBalance:    hasBalance,
	}, nil
}

// writeRows writes txs as CSV rows, preceded by the header when header is set.
func writeRows(w io.Writer, txs []model.Transaction, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, tx := range txs {
		if err := cw.Write(MarshalEntry(tx)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadEntries reads an audit log with a header row.
func ReadEntries(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// AppendFile appends txs to the audit log at path, writing the header if the
// file is new.
func AppendFile(path string, txs []model.Transaction) error {
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	if err := writeRows(f, txs, needsHeader); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile returns all entries of the audit log at path.
func ReadFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return ReadEntries(f)
}
