package port

import (
	"context"
	"errors"
	"time"

	"clipmarket/internal/core/domain"
)

// ErrRunInProgress is returned when another invocation of the same job holds
// the run lease.
var ErrRunInProgress = errors.New("run already in progress")

// ViewSupplier fetches current engagement counts for a clip from its
// platform. Calls are slow, rate limited and may fail; implementations must
// bound each call with a timeout.
type ViewSupplier interface {
	FetchViews(ctx context.Context, clip domain.Clip) (domain.ViewSnapshot, error)
}

// DisbursementSink hands finalized payout records to the system that moves
// money or notifies users. Disburse must be idempotent per record id: the
// same record can be handed over again if marking it paid failed.
type DisbursementSink interface {
	Disburse(ctx context.Context, record domain.PayoutRecord) error
}

// RunGuard grants short-lived named leases so that overlapping triggers of
// the same job do not run side by side. When ok is false the lease is held
// by someone else. release must be called once the job is done.
type RunGuard interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (release func(), ok bool, err error)
}
