/*
Package softly provides soft assertions for Go: failed checks are captured instead of aborting, and every failure from a unit of work is reported together.

The module is split into a few packages:
  - assert has the validation surface. Failed checks raise an *assert.Failure, either as a panic or through a Reporter.
  - soft has the core. It collects failures, diverts them away from the caller, and finalizes them into a single aggregate error when a unit of work ends.
  - env reads environment variables, with strict variants that fail validation for use with soft.
  - cli is an opinionated sub-command framework, used by cmd/softcheck.

See cmd/softcheck for a CLI that uses all of these to check environment variables and YAML documents in one pass.
*/
package softly
