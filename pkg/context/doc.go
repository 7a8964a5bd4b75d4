/*
Package context provides utilities wrapping the native go/context package
for catching and handling multiple interrupts.

The main use-case is to stop unbounded random generation gracefully. The first interrupt cancels
the context, the workers notice on their next record, flush what they have buffered and exit.
A second interrupt exits the process straight away.

	import "github.com/assetnote/brutegen/pkg/context"

	...

	if _, err := brutegen.Run(context.Context(), os.Stdout, opts...); err != nil {
		log.Fatal().Err(err).Msg("failed to generate")
	}
*/
package context
