package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Closing block tags are followed by a newline so paragraphs survive stripping.
var blockBreaks = strings.NewReplacer(
	"<br>\n", "<br>\n",
	"<br />\n", "<br />\n",
	"</p>", "</p>\n\n",
	"<br>", "<br>\n",
	"<br/>", "<br/>\n",
	"<br />", "<br />\n",
	"</h1>", "</h1>\n\n",
	"</h2>", "</h2>\n\n",
	"</h3>", "</h3>\n\n",
	"</li>", "</li>\n",
	"</tr>", "</tr>\n",
	"</div>", "</div>\n",
	"</blockquote>", "</blockquote>\n\n",
)

var (
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

// PlainText renders HTML as readable text: all markup is removed, entities
// are decoded and block elements become line breaks. Script and style
// contents are dropped. Non-breaking spaces become ordinary spaces, so
// deliberate indentation survives while markup indentation does not.
func PlainText(s string) string {
	s = strict().Sanitize(blockBreaks.Replace(s))
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(strings.TrimLeft(l, " \t"), "\u00a0", " ")
	}
	s = strings.Join(lines, "\n")
	s = trailingSpace.ReplaceAllString(s, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimRight(strings.TrimLeft(s, "\n"), " \t\n")
}

// StripTags removes all markup and decodes entities, keeping text on one line.
func StripTags(s string) string {
	s = html.UnescapeString(strict().Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
