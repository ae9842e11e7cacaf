package view

import (
	"fmt"
	"io"

	"github.com/wondertrack/wondertrack/internal/model"
)

// WriteText prints sections as an indented plain-text listing
func WriteText(w io.Writer, sections []model.Section) error {
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%s)\n", s.Category, s.Badge); err != nil {
			return err
		}
		for _, c := range s.Cards {
			if _, err := fmt.Fprintf(w, "  %-28s %10s  [%.1fx%.0f]\n", c.Name, c.Price, c.Width, c.Height); err != nil {
				return err
			}
			if c.Description != "" {
				if _, err := fmt.Fprintf(w, "    %s\n", c.Description); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
