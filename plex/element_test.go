package plex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<MediaContainer totalSize="2">
	<Video title="Heat" year="1995" duration="10200000">
		<Genre tag="Crime"/>
		<Genre tag="Drama, sort of"/>
		<Genre tag="Thriller"/>
		<Director tag="Michael Mann"/>
		<Media videoResolution="1080" audioCodec="dts">
			<Part size="15032385536"/>
		</Media>
	</Video>
	<Video title="Ran" year="1985"/>
</MediaContainer>`

func TestParseDocument(t *testing.T) {
	root, err := ParseDocument([]byte(sampleDoc))
	require.NoError(t, err)

	videos := root.ChildrenNamed("Video")
	require.Len(t, videos, 2)
	assert.Equal(t, "Heat", videos[0].Attr("title"))
	assert.Equal(t, "Ran", videos[1].Attr("title"))
}

func TestAttrAbsent(t *testing.T) {
	root, err := ParseDocument([]byte(sampleDoc))
	require.NoError(t, err)

	video := root.ChildrenNamed("Video")[1]
	assert.Equal(t, "1985", video.Attr("year"))
	assert.Empty(t, video.Attr("studio"))
	assert.Empty(t, video.Attr("duration"))
}

func TestTagList(t *testing.T) {
	root, err := ParseDocument([]byte(sampleDoc))
	require.NoError(t, err)
	video := root.ChildrenNamed("Video")[0]

	// Source order preserved; a tag containing the join delimiter stays
	// one entry because extraction is structural.
	assert.Equal(t, "Crime, Drama, sort of, Thriller", video.TagList("Genre"))
	assert.Equal(t, "Michael Mann", video.TagList("Director"))
	assert.Empty(t, video.TagList("Writer"))
}

func TestNestedChildLookup(t *testing.T) {
	root, err := ParseDocument([]byte(sampleDoc))
	require.NoError(t, err)
	video := root.ChildrenNamed("Video")[0]

	media := video.Child("Media")
	require.NotNil(t, media)
	assert.Equal(t, "1080", media.Attr("videoResolution"))

	part := media.Child("Part")
	require.NotNil(t, part)
	assert.Equal(t, "15032385536", part.Attr("size"))

	assert.Nil(t, root.ChildrenNamed("Video")[1].Child("Media"))
}

func TestParseTolerantOfUndeclaredEntities(t *testing.T) {
	// Plex payloads carry HTML named entities that XML does not
	// predeclare; parsing must not choke on them.
	doc := `<MediaContainer><Video title="War &amp; Peace &ndash; Part 1"/></MediaContainer>`
	root, err := ParseDocument([]byte(doc))
	require.NoError(t, err)
	assert.Contains(t, root.ChildrenNamed("Video")[0].Attr("title"), "War & Peace")
}
