package format

import "strings"

// entityReplacer maps the character references Plex emits in summaries,
// titles and taglines to their literal characters. Unrecognized
// references pass through untouched. The table is fixed; decoding is a
// no-op on text that has already been decoded.
var entityReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&#34;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&#x27;", "'",
	"&lt;", "<",
	"&gt;", ">",
	"&ndash;", "–",
	"&#8211;", "–",
	"&mdash;", "—",
	"&#8212;", "—",
	"&hellip;", "…",
	"&#8230;", "…",
	"&nbsp;", " ",
	"&#160;", " ",
	"&lsquo;", "‘",
	"&#8216;", "‘",
	"&rsquo;", "’",
	"&#8217;", "’",
	"&ldquo;", "“",
	"&#8220;", "“",
	"&rdquo;", "”",
	"&#8221;", "”",
	"&frac12;", "½",
	"&#189;", "½",
	"&frac14;", "¼",
	"&#188;", "¼",
	"&frac34;", "¾",
	"&#190;", "¾",
	"&amp;", "&",
	"&#38;", "&",
)

// DecodeEntities replaces known HTML/XML character references with
// their literal characters. It must run before EscapeQuotes: a decoded
// &quot; produces a literal quote that still needs escaping.
func DecodeEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}
	return entityReplacer.Replace(text)
}

// EscapeQuotes doubles every embedded double-quote character. The
// caller wraps the field in an outer quote pair when writing; no other
// character is altered.
func EscapeQuotes(text string) string {
	return strings.ReplaceAll(text, `"`, `""`)
}
