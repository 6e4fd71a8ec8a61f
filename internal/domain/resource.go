package domain

import "strings"

// Resource identifies which Solr core a request addresses.
type Resource string

const (
	// ResourceItem is a catalogue item (a manuscript record).
	ResourceItem Resource = "item"
	// ResourceCollection is a curated collection of items.
	ResourceCollection Resource = "collection"
)

// ParseResource normalizes a resource type name, accepting the plural forms
// used in route paths ("items", "collections").
func ParseResource(s string) (Resource, error) {
	switch Resource(strings.TrimSuffix(s, "s")) {
	case ResourceItem:
		return ResourceItem, nil
	case ResourceCollection:
		return ResourceCollection, nil
	default:
		return "", ErrUnknownResource
	}
}
