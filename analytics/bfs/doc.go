// Package bfs computes unweighted shortest-path distances over a
// propgraph.Graph, writing them into a named uint32 output column.
//
// Five algorithm variants trade off synchronization granularity:
// AsynchronousTile/Asynchronous process the frontier through exec.ForEach
// as soon as a node is discovered; SynchronousTile/Synchronous alternate
// current/next frontiers behind a full exec.DoAll barrier each round;
// SynchronousDirectOpt additionally switches between push (frontier walks
// its own out-edges) and pull (every undiscovered node scans its
// in-edges) depending on frontier size, the classic direction-optimizing
// trick for low-diameter power-law graphs.
//
// Grounded on bfs.walker (queue/visited/enqueue/dequeue()),
// generalized from one goroutine's private queue to per-round shared
// frontiers coordinated by package exec.
package bfs
