// Package burrow models the amphipod burrow: an 11-slot hallway feeding four
// bays (stacks) of fixed depth, and the packed Configuration word that a
// search engine stores, compares and hashes millions of times per solve.
//
// Overview:
//
//   - Unit enumerates the four unit kinds (Amber, Bronze, Copper, Desert) and
//     their per-step costs 1, 10, 100 and 1000.
//   - Grid is the raw, human-friendly cell assignment (hallway + bays, index 0
//     of each bay is its mouth). It is what parsers produce and what tests
//     compare.
//   - Configuration is the dense form: a single uint64. Equality and hashing
//     are integer operations, which keeps visited-map probes cheap.
//   - Codec converts between the two and exposes O(1) queries and mutators on
//     the packed form. Packed is the only implementation.
//
// Topology:
//
//	#############
//	#01.3.5.7.9X#      hallway positions 0..10 (X = 10)
//	###A#B#C#D###      bay mouths sit under positions 2, 4, 6 and 8
//	  #A#B#C#D#        depth 1 .. D-1 below the mouth
//	  #########
//
// Positions 2, 4, 6 and 8 are never stopping points; only the seven positions
// listed in Stops may hold a unit.
//
// Packed layout (low to high bits):
//
//	bits  0..35  four 9-bit bay words, bay b at 9*b
//	             word = 1<<(2n) | types, n = occupancy,
//	             2-bit type per occupied slot counted from the bottom
//	bits 36..56  seven 3-bit hallway stop fields, 0b1tt when occupied
//
// The leading 1 of each bay word is a sentinel: its position yields the
// occupancy in O(1) through bits.Len64, and comparing the low 2n bits with the
// bay's repeated type pattern answers "does this bay only hold its own kind".
//
// Mutators never modify their input; Configuration is a value type, so a word
// already stored in a frontier or visited map cannot change under it.
//
// Errors (sentinel):
//
//   - ErrBadDepth, ErrBayLength, ErrBayGap, ErrMouthOccupied, ErrUnitCount,
//     ErrUnknownUnit: Encode rejected a structurally invalid Grid.
//   - ErrBayIndex, ErrSlotIndex, ErrNotStop, ErrSlotOccupied, ErrSlotEmpty,
//     ErrDepthMismatch: a mutator was asked for something the layout forbids.
package burrow
