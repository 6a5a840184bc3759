// Package batch solves many independent burrow instances on a bounded pool of
// worker goroutines and memoises their outcomes.
//
// Overview:
//
//   - A Runner holds one search.Engine per bay depth, all sharing the same
//     search options, logger and metrics collector.
//   - Run dispatches jobs to Workers goroutines and returns one Outcome per
//     job, in job order. A failed job never stops the others; its error is
//     carried in Outcome.Err.
//   - Outcomes are cached in an xsync.Map keyed by an xxh3 fingerprint of
//     (depth, configuration). Identical instances, in the same Run or a later
//     one, are answered from the cache and reported with Cached set.
//     Two workers racing on the same fresh instance may both solve it; the
//     first stored outcome wins.
//   - Cancelling the context stops dispatch; jobs not yet started end with
//     the context error.
//
// Errors:
//
//   - ErrBadWorkers: WithWorkers(n) with n < 1 (panics, like the search
//     options).
//   - Per job: parse, encode and search errors, wrapped with the job name.
package batch
