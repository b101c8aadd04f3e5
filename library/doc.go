// Package library keeps a named collection of saved graphs in one file.
//
// The file is a JSON or YAML list of entries, chosen by extension:
//
//	# graphs.yaml
//	- name: Sample Graph
//	  graph:
//	    directed: true
//	    nodes: [...]
//	    edges: [...]
//
// Every save appends: re-saving an existing name drops the old entry and
// adds the new one last, so List is ordered by most recent save. A missing
// or unreadable file opens as an empty library and the problem is logged,
// never returned.
// Every mutation rewrites the whole file through a temporary sibling and
// an atomic rename.
package library
