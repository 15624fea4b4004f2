package contact

import "embed"

//go:embed templates
var templates embed.FS

const (
	templateDir          = "templates"
	layoutDir            = "templates/layouts"
	notificationTemplate = "notification.md"
	notificationLayout   = "base.html"
)
