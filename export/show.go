package export

import (
	"plexcsv/format"
	"plexcsv/plex"
)

var showVariant = variant{
	header: []string{
		"Title", "Episodes", "Seasons", "Studio", "Content Rating",
		"Summary", "Audience Rating", "Year", "Duration", "Release Date",
		"Added At", "Updated At", "Genres", "Countries", "Actors",
	},
	itemType: plex.TypeShow,
	element:  "Directory",
	row:      showRow,
	env:      showEnv,
}

func showRow(el *plex.Element) []string {
	return []string{
		el.Attr("title"),
		format.OrZero(el.Attr("leafCount")),
		format.OrZero(el.Attr("childCount")),
		el.Attr("studio"),
		el.Attr("contentRating"),
		el.Attr("summary"),
		format.RatingPercent(el.Attr("audienceRating")),
		el.Attr("year"),
		format.HoursMinutes(el.Attr("duration")),
		el.Attr("originallyAvailableAt"),
		format.LocalTime(el.Attr("addedAt")),
		format.LocalTime(el.Attr("updatedAt")),
		el.TagList("Genre"),
		el.TagList("Country"),
		el.TagList("Role"),
	}
}

func showEnv(el *plex.Element) map[string]any {
	return map[string]any{
		"Title":         el.Attr("title"),
		"Year":          attrInt(el, "year"),
		"Studio":        el.Attr("studio"),
		"ContentRating": el.Attr("contentRating"),
		"Episodes":      attrInt(el, "leafCount"),
		"Seasons":       attrInt(el, "childCount"),
		"Genres":        tagSlice(el, "Genre"),
		"Actors":        tagSlice(el, "Role"),
	}
}
