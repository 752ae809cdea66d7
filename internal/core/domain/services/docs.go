// Package services provides domain services that work across aggregates of
// the warehouse model:
//   - BinStateEngine: derived bin status, lock state and utilisation
//   - RouteOptimizer: pick-list ordering strategies and route metrics
//   - MovementAnalyzer: aggregation over the movement ledger
//   - AnalyticsEngine: daily heatmap and metrics snapshots
//
// Every service is a pure function of its inputs; persistence and
// transactions are the caller's concern.
package services
