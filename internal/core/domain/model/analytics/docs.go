// Package analytics holds the daily heatmap and metrics snapshots. Each
// snapshot is keyed by (layout, UTC calendar day) and is written at most once.
package analytics
