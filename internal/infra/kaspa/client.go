// Package kaspa fetches address transactions from the Kaspa REST API
// (https://api.kaspa.org) and converts them into txclassify records.
package kaspa

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/transport/restjson"
	"github.com/gabapcia/kaspawatch/internal/pkg/validator"
	"github.com/gabapcia/kaspawatch/internal/txclassify"
)

// DefaultBaseURL is the public Kaspa REST API.
const DefaultBaseURL = "https://api.kaspa.org"

var (
	// ErrAddressNotFound is returned when the API does not know the address.
	ErrAddressNotFound = errors.New("address not found")

	// ErrUnexpectedStatus is returned for any other non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedPayload is returned when the response is not the expected JSON.
	ErrMalformedPayload = errors.New("malformed transactions payload")
)

type (
	// PreviousOutputResponse is the output referenced by an input or an output.
	PreviousOutputResponse struct {
		Address string `json:"address"`
		Amount  int64  `json:"amount" validate:"gte=0"`
	}

	// InputResponse is a transaction input.
	InputResponse struct {
		PreviousOutput PreviousOutputResponse `json:"previousOutput"`
	}

	// OutputResponse is a transaction output.
	OutputResponse struct {
		Address        string                 `json:"address"`
		PreviousOutput PreviousOutputResponse `json:"previousOutput"`
	}

	// TransactionResponse is a transaction as returned by the API.
	TransactionResponse struct {
		TransactionID string           `json:"transactionId" validate:"required"`
		BlockTime     int64            `json:"blockTime" validate:"gte=0"`
		Inputs        []InputResponse  `json:"inputs" validate:"dive"`
		Outputs       []OutputResponse `json:"outputs" validate:"dive"`
	}

	// TransactionsResponse is the body of GET /addresses/{address}/transactions.
	TransactionsResponse struct {
		Transactions []TransactionResponse `json:"transactions"`
	}
)

// toTransaction converts the API record into the classifier input.
func (t TransactionResponse) toTransaction() txclassify.Transaction {
	inputs := make([]txclassify.Input, len(t.Inputs))
	for i, in := range t.Inputs {
		inputs[i] = txclassify.Input{
			PreviousOutput: txclassify.PreviousOutput(in.PreviousOutput),
		}
	}

	outputs := make([]txclassify.Output, len(t.Outputs))
	for i, out := range t.Outputs {
		outputs[i] = txclassify.Output{
			Address:        out.Address,
			PreviousOutput: txclassify.PreviousOutput(out.PreviousOutput),
		}
	}

	return txclassify.Transaction{
		ID:        t.TransactionID,
		BlockTime: t.BlockTime,
		Inputs:    inputs,
		Outputs:   outputs,
	}
}

type client struct {
	conn restjson.Client
}

// NewClient creates a Kaspa API client on top of conn.
func NewClient(conn restjson.Client) *client {
	return &client{
		conn: conn,
	}
}

// FetchTransactions returns the recent transactions of address, most recent
// first as ordered by the API.
//
// Records failing validation are dropped individually. A 404 maps to
// ErrAddressNotFound, other non-200 responses to ErrUnexpectedStatus and an
// undecodable body to ErrMalformedPayload.
func (c *client) FetchTransactions(ctx context.Context, address string) ([]txclassify.Transaction, error) {
	path := fmt.Sprintf("/addresses/%s/transactions", url.PathEscape(address))

	var res TransactionsResponse
	if err := c.conn.Get(ctx, path, &res); err != nil {
		return nil, translateError(err)
	}

	txs := make([]txclassify.Transaction, 0, len(res.Transactions))
	for _, record := range res.Transactions {
		if err := validator.Validate(record); err != nil {
			logger.Debug(ctx, "dropping invalid transaction record",
				"address", address,
				"transaction.id", record.TransactionID,
				"error", err,
			)
			continue
		}

		txs = append(txs, record.toTransaction())
	}

	return txs, nil
}

func translateError(err error) error {
	var statusErr *restjson.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", ErrAddressNotFound, err)
		}

		return fmt.Errorf("%w: %w", ErrUnexpectedStatus, err)
	}

	if errors.Is(err, restjson.ErrMalformedResponse) {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	return err
}
