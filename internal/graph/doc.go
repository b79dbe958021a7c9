// Package graph holds the in-memory unit graph: nodes are named measurement
// units, edges are weighted conversion relations.
//
// # Structure
//
// Every declared relation between A and B materializes as two directed
// Relations, one in each unit's adjacency list, so a path search can walk
// the graph in either direction:
//
//	edge A f B NOINVERT   =>   A -(xf)-> B    and    B -(x1/f)-> A
//	edge A f B INVERT     =>   A -(f/x)-> B    and    B -(f/x)-> A
//
// The invertive form keeps the same factor in both directions because
// x -> f/x undoes itself.
//
// # Ordering
//
// Relations are prepended to each unit's list, so traversal visits them in
// reverse declaration order. On graphs where several paths connect two units
// this ordering decides which path the converter finds first; it is kept
// stable deliberately rather than reconciled (see package converter).
//
// # State
//
// The graph itself is immutable after Build and holds no per-query state.
// Visited bookkeeping for a path search lives in the converter, scoped to a
// single call, so one graph instance can serve any number of sequential
// conversions.
package graph
