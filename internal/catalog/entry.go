package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntryNotFound   = errors.New("catalog entry not found")
	ErrInvalidCategory = errors.New("invalid category")
)

type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryLegs      Category = "legs"
	CategoryShoulders Category = "shoulders"
	CategoryBiceps    Category = "biceps"
	CategoryTriceps   Category = "triceps"
	CategoryForearms  Category = "forearms"
	CategoryAbs       Category = "abs"
)

// Categories in display order.
var Categories = []Category{
	CategoryChest,
	CategoryBack,
	CategoryShoulders,
	CategoryLegs,
	CategoryBiceps,
	CategoryTriceps,
	CategoryAbs,
	CategoryForearms,
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

type Entry struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	URL      string   `json:"url,omitempty" yaml:"url,omitempty"`
}

type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}
