// Package location models the physical storage hierarchy of a layout:
// Area → Shelf → Bin.
//
// Only bins hold inventory. A bin with a non-zero quantity is "locked": its
// position, dimensions and parent are frozen and only SetBlocked is accepted.
// Shelves are usually created together with a regular grid of bins
// (GenerateGrid); resizing a shelf regenerates that grid.
package location
