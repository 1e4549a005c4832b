package main

import "github.com/light-bringer/autocat-service/internal/cli"

func main() {
	cli.Execute()
}
