package model

import "fmt"

// Card is the view-model for one product inside a section
type Card struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Width       float32 `json:"width"`
	Height      float32 `json:"height"`
}

// Section is the view-model for one category: header, count badge and card grid
type Section struct {
	Category  string  `json:"category"`
	ItemCount int     `json:"item_count"`
	Badge     string  `json:"badge"`
	CardWidth float32 `json:"card_width"`
	Cards     []Card  `json:"cards"`
}

// BadgeText formats the item count badge shown next to a section header
func BadgeText(count int) string {
	if count == 1 {
		return "1 Item"
	}
	return fmt.Sprintf("%d Items", count)
}

// IsEmpty reports whether the section has no cards
func (s Section) IsEmpty() bool {
	return len(s.Cards) == 0
}

// CountCards returns the total number of cards across sections
func CountCards(sections []Section) int {
	total := 0
	for _, s := range sections {
		total += len(s.Cards)
	}
	return total
}
