// Package answer holds the typed values a questionnaire produces.
//
// # Overview
//
// Every reply typed at a prompt arrives as raw text. Coerce turns that text
// into a Value, a small tagged variant with four kinds:
//
//   - Empty: nothing was typed (use the question's default)
//   - Bool: yes/no style replies (true, yes, y, false, no, n)
//   - Number: text that survives a numeric round trip unchanged ("42", "-3.5")
//   - Text: anything else, verbatim
//
// # Usage
//
//	v := answer.Coerce("42")      // Number 42
//	v = answer.Coerce("42abc")    // Text "42abc"
//	v = answer.Coerce("Y")        // Bool true
//
// Answers collects values by question id in the order they were given:
//
//	a := answer.NewAnswers()
//	a.Set("country", answer.Text("US"))
//	a.Map() // map[string]any{"country": "US"}
package answer
