package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/gops/agent"
	"github.com/viant/wirely"
	"github.com/viant/wirely/cmd"
)

func main() {
	go func() {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Fatal(err)
		}
	}()

	err := cmd.RunApp(wirely.Version, os.Args[1:])
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}
