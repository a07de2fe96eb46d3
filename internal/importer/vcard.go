package importer

import (
	"regexp"
	"strings"
)

var (
	beginVCard = regexp.MustCompile(`(?i)BEGIN:VCARD`)
	endVCard   = regexp.MustCompile(`(?i)END:VCARD`)
	phoneStrip = regexp.MustCompile(`[^0-9+]`)
)

// ParseVCF parses contact-card text blocks. One card per
// BEGIN:VCARD ... END:VCARD span; FN maps to name, any TEL* to phone
// (stripped to digits and a leading +), any EMAIL* to email, ORG to
// company and NOTE to notes. The first occurrence of each field wins.
// Cards without an FN are dropped.
func ParseVCF(text string) []RawContact {
	var cards []RawContact
	for _, part := range beginVCard.Split(text, -1) {
		if part == "" || !endVCard.MatchString(part) {
			continue
		}
		body := endVCard.Split(part, 2)[0]
		card := parseCardBody(body)
		if card.Name != "" {
			cards = append(cards, card)
		}
	}
	return cards
}

func parseCardBody(body string) RawContact {
	var card RawContact
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		rawKey, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		key := strings.ToUpper(rawKey)

		switch {
		case (key == "FN" || strings.HasPrefix(key, "FN;")) && card.Name == "":
			card.Name = value
		case strings.HasPrefix(key, "TEL") && card.Phone == "":
			card.Phone = phoneStrip.ReplaceAllString(value, "")
		case strings.HasPrefix(key, "EMAIL") && card.Email == "":
			card.Email = value
		case (key == "ORG" || strings.HasPrefix(key, "ORG;")) && card.Company == "":
			card.Company = value
		case (key == "NOTE" || strings.HasPrefix(key, "NOTE;")) && card.Notes == "":
			card.Notes = value
		}
	}
	return card
}
