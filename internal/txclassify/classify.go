// Package txclassify decides how a Kaspa transaction relates to a watched
// address: which direction the funds moved, who the counterparty is, and how
// many sompi were involved.
//
// Classification is a pure function of its inputs. Amounts stay in sompi;
// conversion to KAS is a presentation concern left to the caller.
package txclassify

import "errors"

// UnknownCounterparty is reported when the counterparty cannot be determined.
const UnknownCounterparty = "Unknown"

var (
	// ErrNoOutputs is returned for transactions without outputs.
	ErrNoOutputs = errors.New("transaction has no outputs")

	// ErrNotRelated is returned when the transaction does not touch the address.
	ErrNotRelated = errors.New("transaction does not involve the address")
)

// Direction tells whether funds entered or left the watched address.
type Direction int

const (
	Incoming Direction = iota + 1
	Outgoing
)

// String returns the label used in notifications.
func (d Direction) String() string {
	switch d {
	case Incoming:
		return "Incoming"
	case Outgoing:
		return "Outgoing"
	default:
		return "Unknown"
	}
}

// PreviousOutput is the output referenced by an input, or the amount
// reference carried by an output.
type PreviousOutput struct {
	Address string
	Amount  int64
}

// Input is a transaction input.
type Input struct {
	PreviousOutput PreviousOutput
}

// Output is a transaction output. Its amount is read from PreviousOutput,
// which is where the upstream API reports it.
type Output struct {
	Address        string
	PreviousOutput PreviousOutput
}

// Transaction is a read-only transaction record as returned by the upstream API.
type Transaction struct {
	ID        string
	BlockTime int64 // milliseconds since the Unix epoch
	Inputs    []Input
	Outputs   []Output
}

// Classification is the outcome of Classify.
type Classification struct {
	Direction    Direction
	Counterparty string
	Amount       int64 // sompi
}

// Classify relates tx to address.
//
// Outputs are checked first: any output paying address makes the
// transaction Incoming, with the first input's address as counterparty and
// the amounts of the outputs paying address summed. Otherwise an input
// spending from address makes it Outgoing, with the first output's address
// as counterparty and every output amount summed.
//
// Returns ErrNoOutputs or ErrNotRelated when tx cannot be dispatched.
func Classify(address string, tx Transaction) (Classification, error) {
	if len(tx.Outputs) == 0 {
		return Classification{}, ErrNoOutputs
	}

	if c, ok := classifyIncoming(address, tx); ok {
		return c, nil
	}

	if c, ok := classifyOutgoing(address, tx); ok {
		return c, nil
	}

	return Classification{}, ErrNotRelated
}

func classifyIncoming(address string, tx Transaction) (Classification, bool) {
	var (
		matched bool
		amount  int64
	)
	for _, out := range tx.Outputs {
		if out.Address == address {
			matched = true
			amount += out.PreviousOutput.Amount
		}
	}

	if !matched {
		return Classification{}, false
	}

	counterparty := UnknownCounterparty
	if len(tx.Inputs) > 0 {
		counterparty = orUnknown(tx.Inputs[0].PreviousOutput.Address)
	}

	return Classification{
		Direction:    Incoming,
		Counterparty: counterparty,
		Amount:       amount,
	}, true
}

func classifyOutgoing(address string, tx Transaction) (Classification, bool) {
	matched := false
	for _, in := range tx.Inputs {
		if in.PreviousOutput.Address == address {
			matched = true
			break
		}
	}

	if !matched {
		return Classification{}, false
	}

	var amount int64
	for _, out := range tx.Outputs {
		amount += out.PreviousOutput.Amount
	}

	return Classification{
		Direction:    Outgoing,
		Counterparty: orUnknown(tx.Outputs[0].Address),
		Amount:       amount,
	}, true
}

func orUnknown(address string) string {
	if address == "" {
		return UnknownCounterparty
	}

	return address
}
