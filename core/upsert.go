package core

import (
	"strings"

	"CeibaCheckIn/models"
)

// Normalize cleans the display fields of g the same way Decode does.
func Normalize(g models.Guest) models.Guest {
	g.Name = CleanField(g.Name)
	g.Day1 = CleanField(g.Day1)
	g.Day2 = CleanField(g.Day2)
	return g
}

// FindByName returns the index of the first guest whose name equals name,
// ignoring case.
func FindByName(guests []models.Guest, name string) (int, bool) {
	key := lowerKey(name)
	for i, g := range guests {
		if lowerKey(g.Name) == key {
			return i, true
		}
	}
	return -1, false
}

// Upsert merges g into guests and returns a new slice; guests is left untouched.
// A name match replaces the existing entry in place, a new name is prepended.
func Upsert(guests []models.Guest, g models.Guest) []models.Guest {
	n := Normalize(g)
	out := make([]models.Guest, 0, len(guests)+1)
	if i, ok := FindByName(guests, n.Name); ok {
		out = append(out, guests...)
		out[i] = n
		return out
	}
	out = append(out, n)
	return append(out, guests...)
}

// Dedupe folds repeated names into one entry: a later duplicate replaces the earlier
// one at the earlier position. Order of first appearance is kept.
func Dedupe(guests []models.Guest) []models.Guest {
	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if i, ok := FindByName(out, g.Name); ok {
			out[i] = g
			continue
		}
		out = append(out, g)
	}
	return out
}

// Remove drops the first guest matching name. The bool reports whether one was found.
func Remove(guests []models.Guest, name string) ([]models.Guest, bool) {
	i, ok := FindByName(guests, name)
	if !ok {
		return guests, false
	}
	out := make([]models.Guest, 0, len(guests)-1)
	out = append(out, guests[:i]...)
	return append(out, guests[i+1:]...), true
}

// FilterByName keeps guests whose folded name contains the folded query.
// A blank query returns guests as is.
func FilterByName(guests []models.Guest, query string) []models.Guest {
	q := FoldKey(query)
	if q == "" {
		return guests
	}
	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if strings.Contains(FoldKey(g.Name), q) {
			out = append(out, g)
		}
	}
	return out
}
