// Package layer merges configuration sources in precedence order.
package layer

import "sort"

// Source names where a layer came from.
type Source string

const (
	SourceDefaults Source = "defaults"
	SourceFile     Source = "file"
	SourceEnv      Source = "env"
	SourceFlags    Source = "flags"
)

// Layer is one configuration source.
type Layer struct {
	Source Source
	Data   map[string]any
}

// Merge folds layers in order; later layers override earlier ones.
func Merge(layers ...Layer) map[string]any {
	result := make(map[string]any)
	for _, l := range layers {
		result = DeepMerge(result, l.Data)
	}
	return result
}

// Changes lists the dotted paths that differ between two merged
// configurations, sorted.
func Changes(old, new map[string]any) []string {
	added, modified, removed := DiffMaps(old, new)
	paths := append(append(added, modified...), removed...)
	sort.Strings(paths)
	return paths
}
