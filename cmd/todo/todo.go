package main

import (
	"log"
	"os"

	"github.com/rprtr258/todo/internal/cmds"
)

func main() {
	if err := cmds.NewApp().Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}
