package main

import "github.com/sparsekit/go-sparsekit/cmd/sparsekit/cmd"

func main() {
	cmd.Execute()
}
