// Command goshape validates JSON and YAML documents against the schemas
// compiled into it.
package main

import (
	"os"

	goshape "github.com/reoring/goshape"
)

func main() {
	reg := goshape.NewRegistry()
	registerCatalog(reg)
	os.Exit(Execute(reg, os.Args[1:]))
}
