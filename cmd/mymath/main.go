package main

import "mymath/internal/cli"

func main() { cli.Execute() }
