package main

import "github.com/emiliopalmerini/folio/internal/cli"

func main() {
	cli.Execute()
}
