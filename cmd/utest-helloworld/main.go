package main

import (
	"utest/pkg/utest"

	// Registers the hello world tests.
	_ "utest/helloworld"
)

func main() {
	utest.Main("utest-helloworld")
}
