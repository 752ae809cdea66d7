// Package route holds the PickRoute aggregate (the stored visiting order of an
// order's bins) and the routing strategy tags.
package route
