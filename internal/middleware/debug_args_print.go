package middleware

import (
	"github.com/sirupsen/logrus"

	"github.com/keshon/cosmos/internal/command"
)

// WithDebugArgsPrint logs the arguments of every call at debug level
func WithDebugArgsPrint(log logrus.FieldLogger) command.Middleware {
	return func(cmd command.Command) command.Command {
		next := cmd.Handler
		cmd.Handler = func(args []string) {
			log.WithFields(logrus.Fields{
				"alias": cmd.Alias,
				"args":  args,
			}).Debug("running command")
			next(args)
		}
		return cmd
	}
}
