package main

import (
	"github.com/halpkg/halpkg/cmd/halpkg/internal"
)

func main() {
	internal.Execute()
}
