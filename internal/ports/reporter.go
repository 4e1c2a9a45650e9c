package ports

import "github.com/bft-labs/efflux/internal/domain"

// Reporter records the outcome of each delivered batch for the operator.
type Reporter interface {
	Report(outcome domain.Outcome) error
}
