package document

import "slices"

// TagClass names a family of free-form tags, usually the format that produced
// them. The set is open; the constants cover the bundled loaders.
type TagClass string

// Known tag classes.
const (
	TagOpenRocket TagClass = "OpenRocket"
	TagRockSim    TagClass = "RockSim"
	TagRASP       TagClass = "RASP"
	TagLoader     TagClass = "Loader"
)

// Tags maps a tag class to an ordered list of tags. Insertion order of both
// classes and tags is preserved and duplicates are allowed: tags record what a
// loader saw, they are not a curated property set. The zero value is ready to use.
type Tags struct {
	order  []TagClass
	values map[TagClass][]string
}

// Add appends tag to class, creating the class on first use.
func (t *Tags) Add(class TagClass, tag string) {
	if t.values == nil {
		t.values = make(map[TagClass][]string)
	}
	if _, ok := t.values[class]; !ok {
		t.order = append(t.order, class)
	}
	t.values[class] = append(t.values[class], tag)
}

// Get returns a copy of the tags recorded under class.
func (t Tags) Get(class TagClass) []string {
	return slices.Clone(t.values[class])
}

// Has reports whether class has at least one tag.
func (t Tags) Has(class TagClass) bool {
	return len(t.values[class]) > 0
}

// Classes returns the tag classes in first-use order.
func (t Tags) Classes() []TagClass {
	return slices.Clone(t.order)
}

// Len returns the number of tag classes.
func (t Tags) Len() int { return len(t.order) }

// Clone returns an independent copy.
func (t Tags) Clone() Tags {
	if len(t.order) == 0 {
		return Tags{}
	}
	out := Tags{
		order:  slices.Clone(t.order),
		values: make(map[TagClass][]string, len(t.values)),
	}
	for k, v := range t.values {
		out.values[k] = slices.Clone(v)
	}
	return out
}
