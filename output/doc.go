// Package output provides styled terminal output for Parrot.
//
// # Overview
//
// A Printer writes to any io.Writer and styles text with lipgloss. Styling
// is detected per writer, so output captured in a buffer or piped to a file
// stays plain text.
//
// # Usage
//
//	p := output.New(os.Stdout)
//	p.Banner("What country do you live in?")
//	p.Invalid("Invalid value. (options are a, b, c)")
//	p.Success("Saved answers")
//
// The package-level functions write to stdout through a default Printer:
//
//	output.Success("Operation completed!")
//	output.Info("Next steps:")
//	output.Step("parrot ask questions.yml")
//	output.Error("Something went wrong")
//
// # Styling
//
//   - Banner: bold (question message and options)
//   - Invalid: red (rejected reply)
//   - Success: 🔥 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
