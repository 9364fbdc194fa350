// Package geodna converts latitude/longitude pairs into "geodna" codes and back.
//
// A geodna code is a hemisphere marker ('w' or 'e') followed by symbols from the
// four letter alphabet g, a, t, c. Every symbol halves the longitude interval and
// then the latitude interval of the cell described so far, so each symbol carries
// two bits. The key property is that nearby locations share a common prefix, and
// a code is always a prefix-ancestor of every finer code inside its cell:
//
//	e              eastern hemisphere
//	etc                     45° cell around New Zealand
//	etctttagat              ~0.35° cell
//	etctttagatagtgacagtcta  Wellington, ~8.6e-5° cell
//
// This lets callers do proximity filtering with plain string prefix matching
// (for example SQL's LIKE 'etctttag%') instead of a spatial index.
//
// Precision is the length of the code including the hemisphere marker. The
// default precision of 22 gives cells of roughly 10m x 10m at the equator. The
// cell size for a precision is reported by CellSize.
//
// Go Learning Note — Arrays as Lookup Tables:
// The symbol tables (decodeMap, pairMap) are [256]T arrays indexed by byte
// rather than maps. An array lookup is a bounds-checked index with no hashing,
// and a package level array that is filled once during initialization and never
// written again can be read from any goroutine without a lock. A map would be
// just as safe to read, but a careless write to it later would be a data race;
// an array's fixed shape makes the "build once, read forever" intent plain.
//
// All functions are pure: there is no package level mutable state, so every
// function may be called from any number of goroutines without locking.
package geodna
