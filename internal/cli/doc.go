// SPDX-License-Identifier: MIT

// Package cli implements the segtool command tree: building segment lists
// from command-line arguments, normalizing them and answering queries.
//
// Commands:
//
//	coalesce  sort and merge the given segments, optionally clipped with --keep
//	search    report the segment containing each --at time
//	range     print the earliest start and latest end
//	generate  print a synthetic list built by the builder package
//
// Segments are given as repeated --seg start:end[:id] flags with times in
// decimal GPS seconds. Global settings (--log-level, --output) can also come
// from a .segtool.yaml file or SEGTOOL_* environment variables.
package cli
