package service

import (
	"fmt"

	"github.com/aussiebroadwan/bankgate/internal/bank/domain"
	"github.com/shopspring/decimal"
)

// DefaultTransactionThreshold splits self-service amounts from the ones
// that need an operator.
var DefaultTransactionThreshold = decimal.NewFromInt(1000)

// TransactionPolicy gates credit and debit amounts by role. Clients handle
// amounts up to and including the threshold; admins handle only amounts
// strictly above it. The threshold itself belongs to clients.
type TransactionPolicy struct {
	Threshold decimal.Decimal
}

// NewTransactionPolicy returns a policy with threshold t.
func NewTransactionPolicy(t decimal.Decimal) TransactionPolicy {
	return TransactionPolicy{Threshold: t}
}

// Authorize returns nil when role may move amount, or a
// *ForbiddenOperationError explaining why not.
func (p TransactionPolicy) Authorize(amount decimal.Decimal, role domain.Role) error {
	switch role {
	case domain.RoleClient:
		if amount.GreaterThan(p.Threshold) {
			return &ForbiddenOperationError{
				Reason: fmt.Sprintf("You cannot operate on amounts greater than %s €.", p.Threshold),
			}
		}
		return nil
	case domain.RoleAdmin:
		if amount.LessThanOrEqual(p.Threshold) {
			return &ForbiddenOperationError{
				Reason: fmt.Sprintf("You cannot operate on amounts less than or equal to %s €.", p.Threshold),
			}
		}
		return nil
	default:
		return &ForbiddenOperationError{Reason: "Your role is not allowed to operate on accounts."}
	}
}
