package swapwallet

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// signResult is the single completion value an async caller awaits:
// the compact signature or the error that aborted it (spec §5).
type signResult struct {
	sig string
	err error
}

// SignAssetsAsync offloads SignAssets to a single background worker
// (fire-and-forget task, one per call) and blocks until that worker's
// single completion value arrives or ctx is done. If ctx is canceled
// before the worker finishes, it returns ctx.Err(); the worker keeps
// running in the background and its result is discarded — no partial
// state is persisted (spec §5 cancellation/suspension contract).
func (e *Entry) SignAssetsAsync(ctx context.Context, passphrase []byte, recipient string) (string, error) {
	return e.awaitOne(ctx, func() (string, error) {
		return e.SignAssets(passphrase, recipient)
	})
}

// SignLegacyPillarAsync is the asynchronous counterpart of
// SignLegacyPillar.
func (e *Entry) SignLegacyPillarAsync(ctx context.Context, passphrase []byte, recipient string) (string, error) {
	return e.awaitOne(ctx, func() (string, error) {
		return e.SignLegacyPillar(passphrase, recipient)
	})
}

// awaitOne runs work on its own goroutine and returns as soon as
// either it completes or ctx is done. The only suspension point is
// this await; work itself never suspends mid-flight.
func (e *Entry) awaitOne(ctx context.Context, work func() (string, error)) (string, error) {
	done := make(chan signResult, 1)
	go func() {
		sig, err := work()
		done <- signResult{sig: sig, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.sig, r.err
	}
}

// SignJob names one (entry, message kind, recipient) unit of work for
// SignAllAsync's bounded worker pool.
type SignJob struct {
	Entry     *Entry
	Kind      SignKind
	Recipient string
}

// SignKind selects which attestation an async job signs.
type SignKind int

const (
	// SignKindAssets signs the "assets" attestation template.
	SignKindAssets SignKind = iota
	// SignKindLegacyPillar signs the "legacy pillar" attestation template.
	SignKindLegacyPillar
)

// SignJobResult pairs a completed job with its outcome, in the same
// order as the jobs slice passed to SignAllAsync.
type SignJobResult struct {
	Sig string
	Err error
}

// SignAllAsync runs jobs over a worker pool bounded by limit (spec §5
// "a bounded worker pool"), using golang.org/x/sync/errgroup purely for
// its concurrency-limiting Go/Wait mechanics — an individual job's
// error never aborts its siblings, since each job's error taxonomy is
// captured in its own SignJobResult rather than propagated to the
// group. Cancellation of ctx aborts the wait for still-running jobs;
// their goroutines may still complete in the background with their
// results discarded.
func SignAllAsync(ctx context.Context, jobs []SignJob, passphrase []byte, limit int) ([]SignJobResult, error) {
	results := make([]SignJobResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			var sig string
			var err error
			switch job.Kind {
			case SignKindAssets:
				sig, err = job.Entry.SignAssetsAsync(gctx, passphrase, job.Recipient)
			case SignKindLegacyPillar:
				sig, err = job.Entry.SignLegacyPillarAsync(gctx, passphrase, job.Recipient)
			}
			results[i] = SignJobResult{Sig: sig, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
