/*
Package soft provides soft assertions: failed validations are captured instead of aborting, and reported together when a unit of work ends.

The pieces fit together like this:
  - A [Collector] accumulates [Record] values in the order they occur.
  - A [Soft] wraps validation calls. It lets the real check run, and diverts a recognized failure into its [Collector] instead of letting it propagate.
  - A [Unit] binds one [Soft] to a bounded unit of work, and finalizes the [Collector] when the work ends.

Finalizing produces a single [*AggregateError] holding every captured record, or nil if nothing failed.

# Recognized failures

By default only an [*assert.Failure] (anywhere in an error chain) is treated as a failed validation.
More kinds can be recognized with [WithRecognizer].
Anything else, like a nil pointer dereference inside a check, propagates unchanged and is never recorded.

# Call shapes

Validation calls can reach a [Soft] in a few ways, none of which require changing the check itself:
  - Fluent chains from [That] and [ThatSlice] report through [Soft.Report], and keep returning the same subject.
  - [Soft] satisfies testify's assert.TestingT and require.TestingT, so it can be passed anywhere those are accepted.
  - [Soft.Check] runs any function that panics with a failure.
  - [Soft.CheckErr] accepts any function's returned error.
  - [Call] runs a chain-returning call, and hands back the original receiver if it failed.

# Tests

[Test] binds a [Unit] to a test with t.Cleanup, so all failures are reported when the test body returns.

	func TestConfig(t *testing.T) {
		s := soft.Test(t)
		soft.That(s, cfg.Port).IsNotZero()
		soft.ThatSlice(s, cfg.Hosts).Contains("localhost")
	}
*/
package soft
