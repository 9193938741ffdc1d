package main

import "business-catalog-api/internal/cli"

func main() {
	cli.Execute()
}
