// Package terminal reads replies from a terminal.
//
// # Overview
//
// A Terminal is the raw capability: write text, read a line, read a single
// keypress, switch into raw (keypress) mode. Stdio implements it on top of
// any reader, usually os.Stdin, and makes pending reads cancellable.
//
// A Session drives a Terminal for one or more questionnaires. It offers two
// input channels:
//
//	line, err := session.Line(" - country: ")
//	secret, err := session.Masked(" - password: ", '*')
//
// Masked echoes the mask character per keystroke, handles backspace by
// redrawing the line, and treats Ctrl+C as cancellation.
//
// # Lifecycle
//
// Close releases the terminal exactly once, no matter how many exit paths
// race to call it (normal finish, Ctrl+C, end of input, context
// cancellation). Any read that is pending or started after Close returns
// ErrClosed.
//
//	session, err := terminal.OpenStdio()
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
package terminal
