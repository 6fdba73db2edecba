/*
Package assert provides the validation surface used with soft assertions.

There are a few patterns that are supported:
  - Assertions that panic with a [*Failure] if they are violated.
  - Fluent [Subject] and [SliceSubject] chains that hand failures to a [Reporter].
  - Removal of the panicking assertions with a build flag to maintain runtime performance.

A [*Failure] is the only signal that package soft recognizes as a failed validation by default.
Anything else that panics out of an assertion is treated as a defect and propagates normally.

To turn off panicking assertions build with the 'noassert' flag.
For temporary changes, the Disable and Enable functions are also provided, but these should likely not be used in production code.
*/
package assert
