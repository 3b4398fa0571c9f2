// Package schema walks JSON-Schema-like documents and extracts the dotted
// key-paths their properties declare, so the review surface can show which
// output fields are shared across versions.
package schema

import (
	"sort"
	"strings"
)

// KeyPaths returns every dotted property path declared by the schema,
// parent paths before child paths. Internal "#/..." $refs are resolved
// against the root document; anything else is left unresolved and walked
// as-is (best-effort, never an error).
func KeyPaths(root map[string]any) []string {
	if root == nil {
		return nil
	}
	props, ok := root["properties"].(map[string]any)
	if !ok {
		return nil
	}
	return extract(props, "", root)
}

// SharedKeyPaths intersects the key-path sets of every schema, keeping
// only paths declared by all of them, sorted ascending. A single schema
// yields its own paths; none yields nil.
func SharedKeyPaths(schemas []map[string]any) []string {
	if len(schemas) == 0 {
		return nil
	}

	shared := KeyPaths(schemas[0])
	for _, s := range schemas[1:] {
		if len(shared) == 0 {
			return nil
		}
		paths := make(map[string]struct{})
		for _, p := range KeyPaths(s) {
			paths[p] = struct{}{}
		}
		kept := shared[:0]
		for _, p := range shared {
			if _, ok := paths[p]; ok {
				kept = append(kept, p)
			}
		}
		shared = kept
	}

	sort.Strings(shared)
	return shared
}

// extract emits prefix-joined paths for each property and recurses into
// nested property maps. Array element properties are addressed directly
// under the array's own path, without an extra "items" segment.
//
// Go maps carry no declaration order, so properties are visited in sorted
// key order to keep emission deterministic.
func extract(props map[string]any, prefix string, root map[string]any) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var paths []string
	for _, name := range names {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		paths = append(paths, path)

		node, ok := resolveRef(props[name], root).(map[string]any)
		if !ok {
			continue
		}

		if sub, ok := node["properties"].(map[string]any); ok {
			paths = append(paths, extract(sub, path, root)...)
			continue
		}
		if items, ok := resolveRef(node["items"], root).(map[string]any); ok {
			if sub, ok := items["properties"].(map[string]any); ok {
				paths = append(paths, extract(sub, path, root)...)
			}
			continue
		}
		if len(node) > 0 && node["type"] == nil && node["$ref"] == nil {
			// Plain nested object without schema keywords; walk it as a
			// generic property map.
			paths = append(paths, extract(node, path, root)...)
		}
	}
	return paths
}

// resolveRef follows an internal "#/..." JSON pointer against the root
// document. Dangling or unsupported references return the node unchanged
// so the caller proceeds with degraded extraction.
func resolveRef(node any, root map[string]any) any {
	m, ok := node.(map[string]any)
	if !ok {
		return node
	}
	ref, ok := m["$ref"].(string)
	if !ok {
		return node
	}
	if !strings.HasPrefix(ref, "#/") {
		return node
	}

	current := any(root)
	for _, segment := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		obj, ok := current.(map[string]any)
		if !ok {
			return node
		}
		current, ok = obj[segment]
		if !ok {
			return node
		}
	}
	return current
}
