// Package fetch bridges API client calls to renderable screen state.
//
// Each fetcher owns a private state bundle (items, loading, error, plus
// pagination where it applies) guarded by a mutex, and exposes a Snapshot
// for screens to render. Fetchers do not share state and there is no
// cross-fetcher cache: the same record fetched twice yields two independent
// copies that drift until each is refetched.
//
// Known limitation, kept on purpose: fetchers do not cancel superseded
// requests. When a fetcher is re-triggered before a prior call resolves,
// both resolve independently and the last response to arrive wins, which
// can show out-of-order flicker under rapid refetching.
package fetch
