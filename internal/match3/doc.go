// Package match3 implements the tile-matching engine: the board, match
// detection, gravity, cascade resolution, swap validation and deadlock
// detection. It has no rendering, timing or input concerns; the platform
// layer drives it through AttemptSwap, HasAnyLegalMove and Snapshot.
package match3
