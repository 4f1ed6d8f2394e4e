package middleware

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/keshon/cosmos/internal/command"
)

// WithRecover stops a panicking handler from taking the process down. The
// panic is reported to out as an error line and logged.
func WithRecover(out command.Sink, log logrus.FieldLogger) command.Middleware {
	return func(cmd command.Command) command.Command {
		next := cmd.Handler
		cmd.Handler = func(args []string) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(logrus.Fields{
						"alias": cmd.Alias,
						"panic": r,
					}).Error("command panicked")
					out.EmitLine(fmt.Sprintf("Command %q failed: %v", cmd.Alias, r), command.ColorError)
				}
			}()
			next(args)
		}
		return cmd
	}
}
