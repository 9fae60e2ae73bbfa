// Package simulator synthesizes DrugBank records that follow the shape of
// an existing export.
//
// The generator learns two things from the source records: which values
// each leaf path has held, and how many times each child tag repeated
// under its parent. New records are built by walking a randomly chosen
// source record and resampling both at every level.
package simulator

import (
	"strings"

	"github.com/beevik/etree"
)

// Stats is the structure observed over a set of records. Paths are the
// slash-joined local names below the record element, e.g.
// "synonyms/synonym".
type Stats struct {
	LeafValues   map[string][]string
	RepeatCounts map[string][]int
}

func NewStats() *Stats {
	return &Stats{
		LeafValues:   make(map[string][]string),
		RepeatCounts: make(map[string][]int),
	}
}

// Aggregate records the leaf values and child repeat counts of one record.
func (s *Stats) Aggregate(record *etree.Element) {
	s.aggregate(record, "")
}

func (s *Stats) aggregate(elem *etree.Element, path string) {
	tags, groups := groupChildren(elem)
	for _, tag := range tags {
		childPath := joinPath(path, tag)
		children := groups[tag]
		s.RepeatCounts[childPath] = append(s.RepeatCounts[childPath], len(children))
		for _, child := range children {
			if isLeaf(child) {
				s.LeafValues[childPath] = append(s.LeafValues[childPath], child.Text())
				continue
			}
			s.aggregate(child, childPath)
		}
	}
}

// Rand is the randomness the generator needs; *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generate builds a new element shaped like template. path is the
// template's own path, "" for a record. Each child tag repeats a number of
// times sampled from the observed repeat counts and each leaf takes a
// sampled observed value. Paths that were never observed fall back to the
// template.
func Generate(template *etree.Element, path string, stats *Stats, rng Rand) *etree.Element {
	elem := shallowCopy(template)

	tags, groups := groupChildren(template)
	for _, tag := range tags {
		childPath := joinPath(path, tag)
		templates := groups[tag]
		n := sampleInt(stats.RepeatCounts[childPath], rng, len(templates))
		for i := 0; i < n; i++ {
			tmpl := templates[i%len(templates)]
			if isLeaf(tmpl) {
				leaf := shallowCopy(tmpl)
				if text := sampleString(stats.LeafValues[childPath], rng, tmpl.Text()); text != "" {
					leaf.SetText(text)
				}
				elem.AddChild(leaf)
				continue
			}
			elem.AddChild(Generate(tmpl, childPath, stats, rng))
		}
	}
	return elem
}

// SetPrimaryID makes id the primary drugbank-id of record. The first
// drugbank-id element takes the value; every other one loses its primary
// flag.
func SetPrimaryID(record *etree.Element, id string) {
	var ids []*etree.Element
	for _, child := range record.ChildElements() {
		if child.Tag == "drugbank-id" {
			ids = append(ids, child)
		}
	}
	if len(ids) == 0 {
		first := etree.NewElement("drugbank-id")
		record.InsertChildAt(0, first)
		ids = append(ids, first)
	}

	ids[0].SetText(id)
	ids[0].CreateAttr("primary", "true")
	for _, other := range ids[1:] {
		other.RemoveAttr("primary")
	}
}

func groupChildren(elem *etree.Element) ([]string, map[string][]*etree.Element) {
	var tags []string
	groups := make(map[string][]*etree.Element)
	for _, child := range elem.ChildElements() {
		if _, ok := groups[child.Tag]; !ok {
			tags = append(tags, child.Tag)
		}
		groups[child.Tag] = append(groups[child.Tag], child)
	}
	return tags, groups
}

func shallowCopy(src *etree.Element) *etree.Element {
	elem := etree.NewElement(src.Tag)
	elem.Space = src.Space
	for _, a := range src.Attr {
		elem.CreateAttr(a.FullKey(), a.Value)
	}
	return elem
}

func isLeaf(elem *etree.Element) bool {
	return len(elem.ChildElements()) == 0
}

func joinPath(parent, tag string) string {
	if parent == "" {
		return tag
	}
	return parent + "/" + tag
}

func sampleInt(values []int, rng Rand, fallback int) int {
	if len(values) == 0 {
		return fallback
	}
	return values[rng.Intn(len(values))]
}

func sampleString(values []string, rng Rand, fallback string) string {
	if len(values) == 0 {
		return strings.TrimSpace(fallback)
	}
	return values[rng.Intn(len(values))]
}
