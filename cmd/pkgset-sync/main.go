package main

import "pkgset-sync/internal/cli"

func main() {
	cli.Execute()
}
