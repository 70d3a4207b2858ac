package main

import (
	"fmt"
	"sort"

	"github.com/biter777/countries"
	"github.com/sudorandom/population-explorer/pkg/dataset"
	"github.com/sudorandom/population-explorer/pkg/geo"
)

// mismatch is a name found on one side only. Hint names an entry on the other side that resolves
// to the same ISO 3166 country, when there is one.
type mismatch struct {
	Name string
	Code string
	Hint string
}

func (m mismatch) String() string {
	switch {
	case m.Hint != "":
		return fmt.Sprintf("%s [%s] (other side has %q)", m.Name, m.Code, m.Hint)
	case m.Code != "":
		return fmt.Sprintf("%s [%s]", m.Name, m.Code)
	}
	return m.Name
}

type joinReport struct {
	Joined          int
	MissingRows     []mismatch
	MissingOutlines []mismatch
}

func isoCode(name string) string {
	if c := countries.ByName(name); c != countries.Unknown {
		return c.Alpha2()
	}
	return ""
}

// checkJoin compares the outline names against the table rows using the exact-name join.
func checkJoin(atlas *geo.Atlas, store *dataset.Store) joinReport {
	var r joinReport
	outlineNames := make(map[string]bool, atlas.Len())
	outlinesByCode := make(map[string]string)
	for _, f := range atlas.Features() {
		outlineNames[f.Name] = true
		if code := isoCode(f.Name); code != "" {
			if _, ok := outlinesByCode[code]; !ok {
				outlinesByCode[code] = f.Name
			}
		}
	}

	rowsByCode := make(map[string]string)
	for _, rec := range store.Records() {
		if code := isoCode(rec.Name); code != "" {
			if _, ok := rowsByCode[code]; !ok {
				rowsByCode[code] = rec.Name
			}
		}
	}

	for name := range outlineNames {
		if _, ok := store.Lookup(name); ok {
			r.Joined++
			continue
		}
		code := isoCode(name)
		r.MissingRows = append(r.MissingRows, mismatch{Name: name, Code: code, Hint: rowsByCode[code]})
	}

	seen := make(map[string]bool)
	for _, rec := range store.Records() {
		if outlineNames[rec.Name] || seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		code := isoCode(rec.Name)
		r.MissingOutlines = append(r.MissingOutlines, mismatch{Name: rec.Name, Code: code, Hint: outlinesByCode[code]})
	}

	byName := func(ms []mismatch) func(i, j int) bool {
		return func(i, j int) bool { return ms[i].Name < ms[j].Name }
	}
	sort.Slice(r.MissingRows, byName(r.MissingRows))
	sort.Slice(r.MissingOutlines, byName(r.MissingOutlines))
	return r
}
