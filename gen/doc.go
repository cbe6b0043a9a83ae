// Package gen provides synthetic topology.Constructor generators and
// property-filling helpers, generalizing package builder's constructor
// catalogue (builder/impl_*.go) from core.Graph's string-keyed adjacency
// list to topology.Builder's dense uint32 node range. Every generator here
// matches builder.Constructor's shape (func(g *core.Graph, cfg
// builderConfig) error) specialized to func(b *topology.Builder) error, and
// every generator is deterministic: same parameters produce the same node
// count and the same edge emission order.
package gen
