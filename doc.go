/*
Package dappr defines the common interfaces that tie the engine together:
deterministic addresses, the key-value store contract, message and
transaction abstractions, and the Handler/Decorator execution model.

The root package holds only primitives and interfaces. All domain logic
lives in extensions under x/, persistence helpers under orm/ and store/,
and the assembly glue under app/.

We pass context through context.Context between app, middleware and
handlers. For every value XYZ of type T carried in the context there are
two functions:

	WithXYZ(Context, T) Context
	XYZ(Context) (val T, ok bool)
*/
package dappr
