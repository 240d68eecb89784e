package plex

import "encoding/xml"

// Library kind values as reported by /library/sections.
const (
	KindMovie  = "movie"
	KindShow   = "show"
	KindArtist = "artist"
)

// Item type discriminators for "all items" endpoints.
const (
	TypeMovie = "1"
	TypeShow  = "2"
	TypeAlbum = "9"
	TypeTrack = "10"
)

// Library describes one library section. Discovered once per run;
// immutable afterwards.
type Library struct {
	Key   string `xml:"key,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// Supported reports whether an exporter exists for the library's kind.
func (l Library) Supported() bool {
	switch l.Type {
	case KindMovie, KindShow, KindArtist:
		return true
	}
	return false
}

// sectionList is the envelope returned by /library/sections.
type sectionList struct {
	XMLName     xml.Name  `xml:"MediaContainer"`
	Directories []Library `xml:"Directory"`
}

// sizeProbe reads the pagination metadata off a collection envelope.
// A zero-size page request returns this envelope with no children.
type sizeProbe struct {
	XMLName   xml.Name `xml:"MediaContainer"`
	TotalSize int      `xml:"totalSize,attr"`
	Size      int      `xml:"size,attr"`
}
