package main

import "github.com/rustyeddy/paperdesk/internal/cli"

func main() {
	cli.Execute()
}
