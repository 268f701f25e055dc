package ecm

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with the typed warning helper this package
// needs, built the way the retrieved corpus's own ECS logger
// (cardinal/ecs/log.go) builds its LogComponents/LogEntity helpers:
// structured fields via the zerolog event builder, not a pre-formatted
// string handed to Msgf.
type Logger struct {
	*zerolog.Logger
}

var defaultLogger = newDefaultLogger()

var pkgLogger = defaultLogger

func newDefaultLogger() Logger {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return Logger{Logger: &l}
}

// SetLogger installs l as the package-wide warning sink.
func SetLogger(l Logger) {
	pkgLogger = l
}

// EnablePrettyLogging switches the package-wide sink to zerolog's
// human-readable console writer, mirroring the corpus's own
// WithPrettyLog option (cardinal/ecs/options/options.go), which swaps in
// a zerolog.ConsoleWriter over the default JSON output rather than
// branching on whether a test is running.
func EnablePrettyLogging() {
	pretty := pkgLogger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	pkgLogger = Logger{Logger: &pretty}
}

// LogComponentWarning logs a policy rejection (a refused Add/Overwrite, or
// a mutation of a Required component) with the offending component and
// entity as structured fields, rather than interpolating them into the
// message string.
func (l Logger) LogComponentWarning(componentName string, entityID EntityID, reason string) {
	l.Warn().
		Str("component_name", componentName).
		Uint32("entity_id", uint32(entityID)).
		Msg(reason)
}

func logPolicyRejection(componentName string, entityID EntityID, reason string) {
	pkgLogger.LogComponentWarning(componentName, entityID, reason)
}
