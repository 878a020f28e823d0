// Package fitbook is the Composition Root for the FitBook application.
//
// FitBook is a contact manager for fitness coaches. Each client carries
// contact details, a dated weight history, a height, a free-text note and a
// personal exercise plan. Everything is driven by short text commands such
// as:
//
//	add n/Alex Yeoh p/87438807 e/alexyeoh@example.com
//	weight 1 w/72.5
//	fitadd 1 n/squats s/4 r/8 b/90
//	find w/60-80 t/friends
//
// The package connects the command layer (parser, commands, model) with
// the storage adapter using functional options:
//
//	app, err := fitbook.New(ctx,
//		fitbook.WithDataFile("clients.yaml"),
//		fitbook.WithVersioning(true),
//		fitbook.WithLogger(logger),
//	)
//	res, err := app.Execute(ctx, "list")
//
// The address book is saved after every command that changes it. JSON, YAML
// and CSV data files are supported; with versioning on, each save becomes a
// git commit whose message is the command that caused it.
package fitbook
