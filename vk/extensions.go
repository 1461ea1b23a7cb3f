package vk

import (
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

// ExtensionSet maps extension names to the spec version the driver reports for them. It is
// built from an enumeration result and used to probe optional features.
type ExtensionSet struct {
	versions *swiss.Map[string, uint32]
}

// NewExtensionSet indexes properties by name
func NewExtensionSet(properties []ExtensionProperties) ExtensionSet {
	set := ExtensionSet{versions: swiss.NewMap[string, uint32](uint32(len(properties)))}
	for i := range properties {
		set.versions.Put(properties[i].Name(), properties[i].SpecVersion)
	}
	return set
}

// Has reports whether name was enumerated
func (s ExtensionSet) Has(name string) bool {
	if s.versions == nil {
		return false
	}
	return s.versions.Has(name)
}

// SpecVersion returns the reported spec version for name
func (s ExtensionSet) SpecVersion(name string) (uint32, bool) {
	if s.versions == nil {
		return 0, false
	}
	return s.versions.Get(name)
}

func (s ExtensionSet) Len() int {
	if s.versions == nil {
		return 0
	}
	return s.versions.Count()
}

// Names returns every extension name in sorted order
func (s ExtensionSet) Names() []string {
	if s.versions == nil {
		return nil
	}
	names := make([]string, 0, s.versions.Count())
	s.versions.Iter(func(name string, _ uint32) bool {
		names = append(names, name)
		return false
	})
	slices.Sort(names)
	return names
}

// Missing returns the subset of names that were not enumerated, in the order given
func (s ExtensionSet) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !s.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
