// Package search finds items across a user's lists with fzf-style fuzzy
// matching.
package search

import (
	"sort"

	"github.com/marcus/basket/internal/models"
	"github.com/sahilm/fuzzy"
)

// Match is one item hit. List and Item are 0-based positions.
type Match struct {
	List     int         `json:"list"`
	ListName string      `json:"list_name"`
	Item     int         `json:"item"`
	Entry    models.Item `json:"entry"`
	Score    int         `json:"score"`
}

type entry struct {
	list, item int
}

// source adapts flattened items to fuzzy.Source
type source struct {
	lists   []models.ShoppingList
	entries []entry
}

func (s source) String(i int) string {
	e := s.entries[i]
	return s.lists[e.list].Items[e.item].Name
}

func (s source) Len() int {
	return len(s.entries)
}

// Find ranks every item whose name fuzzily matches query, best first. An
// empty query matches nothing.
func Find(query string, lists []models.ShoppingList) []Match {
	if query == "" {
		return nil
	}

	src := source{lists: lists}
	for li, l := range lists {
		for ii := range l.Items {
			src.entries = append(src.entries, entry{li, ii})
		}
	}

	matches := fuzzy.FindFrom(query, src)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	result := make([]Match, len(matches))
	for i, m := range matches {
		e := src.entries[m.Index]
		result[i] = Match{
			List:     e.list,
			ListName: lists[e.list].Name,
			Item:     e.item,
			Entry:    lists[e.list].Items[e.item],
			Score:    m.Score,
		}
	}
	return result
}
