// Package mailer composes templated email and hands it to a Sender.
//
// Templates are markdown files with optional YAML frontmatter, executed with
// text/template, converted by goldmark and wrapped in an html/template
// layout. Values that come from users must be piped through md:
//
//	---
//	Subject: New message from {{.Name}}
//	---
//	**From:** {{md .Name}}
//
//	[!button|Reply](mailto:{{urlquery .Email}})
//
// Sender implementations live in subpackages: resend for production and
// logsink for local runs.
package mailer
