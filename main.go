package main

import "github.com/saadjs/dietcheck-cli/cmd/dietcheck"

func main() {
	dietcheck.Execute()
}
