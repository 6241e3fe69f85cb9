package catalog

import (
	"sort"
	"strings"
)

type ListParams struct {
	Category Category
	// Query is matched case-insensitively as a substring of the entry name.
	Query string
}

func Filter(entries []Entry, params ListParams) []Entry {
	query := strings.ToLower(strings.TrimSpace(params.Query))
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if params.Category != "" && e.Category != params.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// CategoryCounts counts entries per known category, in display order. Unknown categories are skipped.
func CategoryCounts(entries []Entry) []CategoryCount {
	counts := map[Category]int{}
	for _, e := range entries {
		counts[e.Category]++
	}

	result := make([]CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		result = append(result, CategoryCount{Category: c, Count: counts[c]})
	}
	return result
}

// FindDuplicates returns the names that appear more than once, with their counts.
func FindDuplicates(entries []Entry) map[string]int {
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Name]++
	}
	for name, c := range counts {
		if c < 2 {
			delete(counts, name)
		}
	}
	return counts
}

// SortedNames returns the keys of a duplicates map in lexical order.
func SortedNames(duplicates map[string]int) []string {
	names := make([]string, 0, len(duplicates))
	for name := range duplicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Diff compares a seed against the stored catalog by name: missing are seed names not stored,
// extra are stored names not in the seed. Both are sorted.
func Diff(seed, stored []Entry) (missing, extra []string) {
	seedNames := make(map[string]bool, len(seed))
	for _, e := range seed {
		seedNames[e.Name] = true
	}
	storedNames := make(map[string]bool, len(stored))
	for _, e := range stored {
		storedNames[e.Name] = true
		if !seedNames[e.Name] {
			extra = append(extra, e.Name)
		}
	}
	for _, e := range seed {
		if !storedNames[e.Name] {
			missing = append(missing, e.Name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}
