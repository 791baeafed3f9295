package ledger

import "errors"

var (
	// ErrMalformedTx is returned when a transaction fails structural checks.
	ErrMalformedTx = errors.New("malformed transaction")
	// ErrCoinbase is returned for coinbase transactions submitted from outside.
	ErrCoinbase = errors.New("coinbase transaction not accepted")
	// ErrDuplicateTx is returned when the transaction is already pending.
	ErrDuplicateTx = errors.New("transaction already pending")
	// ErrMissingInput is returned when an input references an unknown or spent output.
	ErrMissingInput = errors.New("input references unknown output")
	// ErrDoubleSpend is returned when an input is already consumed by a pending transaction.
	ErrDoubleSpend = errors.New("input already spent by pending transaction")
	// ErrInsufficientInput is returned when outputs are worth more than inputs.
	ErrInsufficientInput = errors.New("outputs exceed inputs")
)

var rejections = []error{
	ErrMalformedTx,
	ErrCoinbase,
	ErrDuplicateTx,
	ErrMissingInput,
	ErrDoubleSpend,
	ErrInsufficientInput,
}

// IsRejected reports whether err means the ledger refused a transaction.
func IsRejected(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
