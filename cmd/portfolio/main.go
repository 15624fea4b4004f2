package main

import (
	"github.com/alecthomas/kong"
)

// CLI is the command line of the portfolio binary.
type CLI struct {
	EnvFile []string `name:"env-file" help:"Env files to load before reading the environment."`

	Serve ServeCmd `cmd:"" default:"1" help:"Serve the site and the contact endpoint."`
	Send  SendCmd  `cmd:"" help:"Submit a contact message to a running server."`
}

func main() {
	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("portfolio"),
		kong.Description("Portfolio site with a contact form relayed by email."),
		kong.UsageOnError(),
	)
	kongCtx.FatalIfErrorf(kongCtx.Run(&cli))
}
