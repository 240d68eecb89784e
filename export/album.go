package export

import (
	"plexcsv/format"
	"plexcsv/plex"
)

var albumVariant = variant{
	header: []string{
		"Artist", "Album", "Year", "Genres", "Studio", "Added At",
		"Updated At",
	},
	itemType: plex.TypeAlbum,
	element:  "Directory",
	row:      albumRow,
	env:      albumEnv,
}

func albumRow(el *plex.Element) []string {
	return []string{
		el.Attr("parentTitle"),
		el.Attr("title"),
		el.Attr("year"),
		el.TagList("Genre"),
		el.Attr("studio"),
		format.LocalTime(el.Attr("addedAt")),
		format.LocalTime(el.Attr("updatedAt")),
	}
}

func albumEnv(el *plex.Element) map[string]any {
	return map[string]any{
		"Artist": el.Attr("parentTitle"),
		"Album":  el.Attr("title"),
		"Title":  el.Attr("title"),
		"Year":   attrInt(el, "year"),
		"Genres": tagSlice(el, "Genre"),
	}
}
