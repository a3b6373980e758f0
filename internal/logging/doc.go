// Package logging builds the slog loggers used by the tascal command.
//
// The numeric packages never log; only the command layer reports fits, peak
// counts and failures. Console output uses slog's text handler, json output
// the JSON handler. NewNop returns a logger that discards everything.
package logging
