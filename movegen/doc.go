// Package movegen enumerates the legal single-unit moves of a burrow
// configuration and applies them through a burrow.Codec.
//
// Rules:
//
//   - A move is always one leg: bay → hallway stop, or hallway stop → bay.
//     Hallway-to-hallway and bay-to-bay transitions are not representable.
//   - Bay → hallway: the outermost unit of a bay that still holds a foreign
//     kind (burrow.Codec.BayTopMovable) may walk to any of the seven stops,
//     provided every position from the mouth to the stop is free.
//   - Hallway → bay: a unit may only enter its own bay, only while that bay
//     holds nothing but its own kind (burrow.Codec.BayAcceptDepth), and only
//     if every position between its stop (exclusive) and the mouth is free.
//
// Cost:
//
//	(depth + 1 + |slot − mouth(bay)|) × unit step cost
//
// Apply does not re-check path legality; it relies on the codec mutators to
// reject structurally impossible moves and reports them as ErrInvariant, since
// a generated move that cannot be applied means the generator and the codec
// disagree about the burrow.
package movegen
