package mailer

import "strings"

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// tabIndent is how a leading tab is written; a tab stop of four.
const tabIndent = "&nbsp;&nbsp;&nbsp;&nbsp;"

// EscapeMarkdown makes s render as literal text in a markdown template.
// Every ASCII punctuation character is backslash-escaped, so markup and
// raw HTML come out as visible text. Leading indentation is written as
// non-breaking space entities so it shows without opening a code block,
// and line breaks become hard breaks.
func EscapeMarkdown(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")

	var b strings.Builder
	b.Grow(len(s) * 2)
	for i, line := range lines {
		body := strings.TrimLeft(line, " \t")
		if body != "" {
			writeIndent(&b, line[:len(line)-len(body)])
		}
		for _, r := range body {
			if strings.ContainsRune(asciiPunct, r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		if i == len(lines)-1 {
			break
		}
		if body != "" && strings.TrimLeft(lines[i+1], " \t") != "" {
			b.WriteByte('\\')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeIndent(b *strings.Builder, indent string) {
	for _, r := range indent {
		if r == '\t' {
			b.WriteString(tabIndent)
			continue
		}
		b.WriteString("&nbsp;")
	}
}
