package cmd

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"
	soptions "github.com/viant/wirely/cmd/options"
)

func RunApp(version string, args []string) error {
	options := &soptions.Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.Version {
		fmt.Printf("Wirely: version: %v\n", version)
		return nil
	}
	srv := New()
	return srv.Exec(context.Background(), options)
}
