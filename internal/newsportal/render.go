package newsportal

import (
	"time"
	"unicode/utf8"
)

const (
	excerptLength = 140
	excerptMarker = "…"

	dateLayout      = "2006-01-02"
	dateLabelLayout = "2 Jan 2006"
	dateNotSet      = "Date not set"
)

// Excerpt cuts description to excerptLength characters and marks the cut.
func Excerpt(description string) string {
	if utf8.RuneCountInString(description) <= excerptLength {
		return description
	}

	runes := []rune(description)
	return string(runes[:excerptLength]) + excerptMarker
}

// FormatDate renders a stored date for display. Unparsable values are shown as is.
func FormatDate(date string) string {
	if date == "" {
		return dateNotSet
	}

	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format(dateLabelLayout)
		}
	}

	return date
}

func NewCard(n News) Card {
	return Card{
		ID:        n.ID,
		Title:     n.Title,
		Excerpt:   Excerpt(n.Description),
		DateLabel: FormatDate(n.Date),
	}
}

func NewDetail(n News) Detail {
	d := Detail{
		ID:          n.ID,
		Title:       n.Title,
		DateLabel:   FormatDate(n.Date),
		Description: n.Description,
	}

	if n.VideoURL != nil && *n.VideoURL != "" {
		d.VideoURL = *n.VideoURL
		d.EmbedURL = EmbedURL(*n.VideoURL)
	}

	return d
}
