// Package resolver builds the dependency graph for a set of requested
// skills, detects cycles, and computes a dependency-first installation
// order.
//
// Graph construction is deliberately lenient: a missing skill is a logged
// warning and a dropped node, so partial information can still be
// inspected. Order computation is strict: a cycle means no valid install
// order exists and is always fatal.
package resolver
