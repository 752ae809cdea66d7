// Package kernel provides the value objects shared by every warehouse aggregate:
//   - UUID: identifiers for layouts, locations, routes, movements and snapshots
//   - Position: a point in metres (x along width, y along depth, z height)
//   - Dimensions: width/depth/height extents
//   - Box: the axis-aligned bounding box of a location, used for containment checks
//
// Values are immutable; zero values are invalid and fail Validate.
package kernel
