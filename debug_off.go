//go:build !relptrdebug

package relptr

const debugChecks = false
