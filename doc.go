/*
Package iconkit builds a single JSON icon collection out of a directory of SVG icon files.

Every icon goes through the same fixed sequence of stages: it is imported, optimized,
sanitized, moved to the origin when its viewport is offset, recolored and finally exported
together with the rest of the collection. A failing icon never stops the other icons of a
stage, but the build fails once the stage is over and reports every failing icon.

The package provides a command line interface, supporting various flags for the optimizer
and the palette rewrites. To check the supported commands type:

	$ iconkit --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/iconkit"
	)

	func main() {
		opts := iconkit.DefaultBuildOptions()
		opts.Palette.FillMissing = "currentColor"

		p := iconkit.NewPipeline(iconkit.NewToolkit(), opts)
		report, err := p.Run("./svg")
		if err != nil {
			fmt.Printf("Error building the collection: %s", err.Error())
			return
		}
		fmt.Printf("%d icons written to %s\n", report.Icons, report.Output)
	}
*/
package iconkit
