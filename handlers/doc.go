// Package handlers holds the HTTP handlers of the portfolio site: the
// contact endpoint and the JSON error responses shared by all routes.
package handlers
