package newsportal

import "strings"

type NewsList []News

func (ll NewsList) IndexByID() map[string]News {
	index := make(map[string]News, len(ll))
	for _, n := range ll {
		index[n.ID] = n
	}

	return index
}

// Filter keeps items whose title or description contains query,
// case-insensitively. A blank query keeps everything.
func (ll NewsList) Filter(query string) NewsList {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ll
	}

	result := make(NewsList, 0, len(ll))
	for _, n := range ll {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Description), q) {
			result = append(result, n)
		}
	}

	return result
}

func (ll NewsList) Cards() []Card {
	cards := make([]Card, len(ll))
	for i := range ll {
		cards[i] = NewCard(ll[i])
	}

	return cards
}
