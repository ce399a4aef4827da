package taxonomy

import "materialhub/crawler/internal/domain"

// Taxonomy is one source's static category tables: the crawlable leaf
// categories, the parent-group membership lists, and the pseudo-ids that
// stand for "all items in a group". Pure data, no network state; every
// lookup and expansion is deterministic.
type Taxonomy struct {
	categories map[string]domain.Category
	groups     map[string][]string
	allAliases map[string]string // pseudo-category id -> group label
}

func New(categories []domain.Category, groups map[string][]string, allAliases map[string]string) Taxonomy {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	if groups == nil {
		groups = map[string][]string{}
	}
	if allAliases == nil {
		allAliases = map[string]string{}
	}
	return Taxonomy{categories: byID, groups: groups, allAliases: allAliases}
}

func (t Taxonomy) Categories() map[string]domain.Category {
	return t.categories
}

func (t Taxonomy) ParentCategories() map[string][]string {
	return t.groups
}

func (t Taxonomy) Category(id string) (domain.Category, bool) {
	c, ok := t.categories[id]
	return c, ok
}

// Expand replaces every group label or "all items" pseudo-id in the request
// with that group's concrete member list and keeps concrete ids as-is,
// accumulating a duplicate-free list in first-seen order. Idempotent:
// expanding an already-expanded list returns it unchanged.
func (t Taxonomy) Expand(ids []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(ids))

	add := func(id string) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range ids {
		if members, ok := t.groups[id]; ok {
			for _, m := range members {
				add(m)
			}
			continue
		}
		if group, ok := t.allAliases[id]; ok {
			for _, m := range t.groups[group] {
				add(m)
			}
			continue
		}
		add(id)
	}

	return out
}
