// Package mapfile reads the two JSON input formats from disk.
//
// A ".graph" file holds a plain adjacency object, node label to
// neighbor labels:
//
//	{"A": ["B", "C"], "B": ["A", "C"], "C": ["A", "B"]}
//
// A ".map" file holds a dual-index object under the keys
// "nodes to paths" and "paths to nodes", naming every pathway
// explicitly so parallel pathways between the same pair of nodes can be
// expressed:
//
//	{
//	  "nodes to paths": {"A": ["a", "b"], "B": ["a", "b"]},
//	  "paths to nodes": {"a": ["A", "B"], "b": ["A", "B"]}
//	}
//
// Readers warn (but proceed) on an unexpected file suffix, wrap I/O and
// JSON failures in ErrUnreadable, and validate the decoded structure
// with the graph package before returning it.
package mapfile
