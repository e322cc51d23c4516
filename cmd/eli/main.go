/*
File    : eli/cmd/eli/main.go
*/
package main

import (
	"os"

	"github.com/yekhlakov/eli-go/cmd/eli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
