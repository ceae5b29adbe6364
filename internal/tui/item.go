package tui

import (
	"fmt"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/render"
)

// vacancyItem adapts a vacancy to the bubbles list item interface.
type vacancyItem struct {
	vacancy api.Vacancy
}

func (i vacancyItem) Title() string {
	title := i.vacancy.Title
	if !i.vacancy.IsActive {
		title += " (inactive)"
	}
	return title
}

func (i vacancyItem) Description() string {
	return fmt.Sprintf("%s · %s · %s",
		i.vacancy.CompanyName(), i.vacancy.Location, render.Salary(&i.vacancy))
}

func (i vacancyItem) FilterValue() string {
	return i.vacancy.Title + " " + i.vacancy.CompanyName()
}
