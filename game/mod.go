// Package game holds the compact bit-packed game representation the search
// engine explores: 64-bit location sets per field and player, a packed
// metadata word, per-field stockpile words, and a small overflow bitmap for
// the one card (compact id 64) the 64-bit sets cannot address. It also
// carries the candidate-move type, the pure transition function, the
// superset move generator, the static evaluator, and the lossy bridge to
// the canonical representation owned by the external rules engine.
package game
