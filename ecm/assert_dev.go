//go:build !release

package ecm

import "fmt"

func assertImpl(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	pkgLogger.Error().Msg(msg)
	panic(msg)
}
