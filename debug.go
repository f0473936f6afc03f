//go:build relptrdebug

package relptr

// Building with -tags relptrdebug turns violations of the unchecked
// dereference precondition into panics. Normal builds perform no
// detection at all.
const debugChecks = true
