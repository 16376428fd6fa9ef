package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/parrot/answer"
	"github.com/simonhull/firebird-suite/parrot/internal/config"
)

// writeAnswers encodes answers in the order they were given
func writeAnswers(w io.Writer, answers *answer.Answers, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, answers)
	case config.FormatYAML, "":
		return writeYAML(w, answers)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeYAML(w io.Writer, answers *answer.Answers) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range answers.Keys() {
		v, _ := answers.Get(id)

		var value yaml.Node
		if err := value.Encode(v.Interface()); err != nil {
			return fmt.Errorf("failed to encode answer %q: %w", id, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id},
			&value,
		)
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	return enc.Close()
}

// writeJSON builds the object by hand since encoding/json sorts map keys
func writeJSON(w io.Writer, answers *answer.Answers) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range answers.Keys() {
		v, _ := answers.Get(id)
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return err
		}
		value, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Errorf("failed to encode answer %q: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	pretty.WriteByte('\n')
	_, err := pretty.WriteTo(w)
	return err
}
