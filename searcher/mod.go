// Package searcher implements single-threaded Monte Carlo Tree Search over
// the compact game representation. Nodes are value types owned by a flat
// arena and linked by integer indices, which sidesteps the cyclic
// parent/child ownership of a pointer-based tree: the arena can grow
// freely, and every node lives exactly as long as the arena does.
package searcher
