package main

import "github.com/marufsabili148/lombaku/internal/cli"

func main() {
	cli.Execute()
}
