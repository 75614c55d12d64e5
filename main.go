package main

import "github.com/Fepozopo/instafilm/pkg/cli"

func main() {
	cli.Run()
}
