package export

import (
	"strconv"

	"plexcsv/format"
	"plexcsv/plex"
)

var movieVariant = variant{
	header: []string{
		"Title", "Year", "Duration (min)", "Studio", "Content Rating",
		"Summary", "Rating", "Audience Rating", "Tagline", "Release Date",
		"Added At", "Updated At", "Resolution", "Audio Channels",
		"Audio Codec", "Video Codec", "Container", "Frame Rate",
		"File Size", "Genres", "Countries", "Directors", "Writers",
		"Actors",
	},
	itemType: plex.TypeMovie,
	element:  "Video",
	row:      movieRow,
	env:      movieEnv,
}

func movieRow(el *plex.Element) []string {
	var media, part *plex.Element
	if media = el.Child("Media"); media != nil {
		part = media.Child("Part")
	}

	return []string{
		el.Attr("title"),
		el.Attr("year"),
		format.Minutes(el.Attr("duration")),
		el.Attr("studio"),
		el.Attr("contentRating"),
		el.Attr("summary"),
		format.RatingPercent(el.Attr("rating")),
		format.RatingPercent(el.Attr("audienceRating")),
		el.Attr("tagline"),
		el.Attr("originallyAvailableAt"),
		format.LocalTime(el.Attr("addedAt")),
		format.LocalTime(el.Attr("updatedAt")),
		attrOf(media, "videoResolution"),
		attrOf(media, "audioChannels"),
		attrOf(media, "audioCodec"),
		attrOf(media, "videoCodec"),
		attrOf(media, "container"),
		attrOf(media, "videoFrameRate"),
		format.ByteSize(attrOf(part, "size")),
		el.TagList("Genre"),
		el.TagList("Country"),
		el.TagList("Director"),
		el.TagList("Writer"),
		el.TagList("Role"),
	}
}

func movieEnv(el *plex.Element) map[string]any {
	return map[string]any{
		"Title":         el.Attr("title"),
		"Year":          attrInt(el, "year"),
		"Studio":        el.Attr("studio"),
		"ContentRating": el.Attr("contentRating"),
		"Rating":        attrFloat(el, "rating"),
		"Genres":        tagSlice(el, "Genre"),
		"Countries":     tagSlice(el, "Country"),
		"Directors":     tagSlice(el, "Director"),
		"Actors":        tagSlice(el, "Role"),
	}
}

func attrOf(el *plex.Element, name string) string {
	if el == nil {
		return ""
	}
	return el.Attr(name)
}

func attrInt(el *plex.Element, name string) int {
	v, _ := strconv.Atoi(el.Attr(name))
	return v
}

func attrFloat(el *plex.Element, name string) float64 {
	v, _ := strconv.ParseFloat(el.Attr(name), 64)
	return v
}

func tagSlice(el *plex.Element, name string) []string {
	children := el.ChildrenNamed(name)
	tags := make([]string, 0, len(children))
	for _, c := range children {
		if tag := c.Attr("tag"); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
