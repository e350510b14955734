// Package splitter partitions a feature collection by a property value and
// writes one collection file per group.
package splitter

import (
	"encoding/json"

	"github.com/woozymasta/geosplit/internal/geo"
)

// Group is the set of features sharing one value of the grouping property.
type Group struct {
	Key      string
	Features []json.RawMessage
}

// GroupBy buckets features by properties[keyField] in a single pass.
// Groups follow first-encounter order and features keep source order.
// Features without the property, or with a null value, go to fallback.
func GroupBy(fc *geo.FeatureCollection, keyField, fallback string) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, feature := range fc.Features {
		key, ok := geo.Property(feature, keyField)
		if !ok {
			key = fallback
		}

		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Features = append(groups[i].Features, feature)
	}

	return groups
}

// Filter keeps only groups whose key is listed, preserving group order.
// Listed keys with no matching group are returned as missing.
func Filter(groups []Group, keys []string) (kept []Group, missing []string) {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	found := make(map[string]bool, len(keys))
	kept = make([]Group, 0, len(keys))
	for _, g := range groups {
		if wanted[g.Key] {
			kept = append(kept, g)
			found[g.Key] = true
		}
	}

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if found[k] || seen[k] {
			continue
		}
		seen[k] = true
		missing = append(missing, k)
	}

	return kept, missing
}
