package command

// Middleware wraps a command, usually by replacing its handler
type Middleware func(Command) Command

// ApplyMiddlewares wraps a command with any number of middlewares. The last
// middleware in the list becomes the outermost. Commands without a handler
// are returned unchanged so registration can still reject them.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	if cmd.Handler == nil {
		return cmd
	}
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}
