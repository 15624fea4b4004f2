// Package sanitizer turns untrusted or rendered HTML into plain text.
package sanitizer
