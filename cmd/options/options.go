package options

type (
	Options struct {
		Inspect  *Inspect  `command:"inspect" description:"render constructor models of a resource"`
		Validate *Validate `command:"validate" description:"validate constructor definitions of a resource"`
		Version  bool      `short:"v" long:"version" description:"print wirely version"`
	}

	Inspect struct {
		ResourceURL string `short:"r" long:"resource" description:"resource URL" required:"true"`
		Component   string `short:"n" long:"name" description:"component name, with no name all components are rendered"`
		Closure     bool   `short:"c" long:"closure" description:"render type closure"`
	}

	Validate struct {
		ResourceURL string `short:"r" long:"resource" description:"resource URL" required:"true"`
	}
)
