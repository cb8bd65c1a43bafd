package main

import "nlpwalk/internal/cli"

func main() {
	cli.Execute()
}
