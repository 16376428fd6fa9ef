package question

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/parrot/answer"
)

// rawSpec is the YAML shape of one question
type rawSpec struct {
	Message    string    `yaml:"message"`
	Type       string    `yaml:"type"`
	Default    any       `yaml:"default"`
	Options    []any     `yaml:"options"`
	Regex      string    `yaml:"regex"`
	AllowEmpty bool      `yaml:"allow_empty"`
	Error      string    `yaml:"error"`
	DependsOn  yaml.Node `yaml:"depends_on"`
}

// Load reads and parses a YAML registry file
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML registry. The document must be a mapping from question
// id to question; a scalar in place of a question is taken as its default.
func Parse(data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %w", ErrInvalidConfiguration, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty, expected a mapping of question ids", ErrInvalidConfiguration)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: registry must be a mapping of question ids (line %d)", ErrInvalidConfiguration, root.Line)
	}

	var (
		specs []Spec
		errs  ValidationErrors
		lines = make(map[string]int, len(root.Content)/2)
	)

	// Mapping content alternates key, value
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		id := keyNode.Value
		lines[id] = keyNode.Line

		spec, specErrs := parseSpec(id, valueNode)
		errs = append(errs, specErrs...)
		specs = append(specs, spec)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, errs)
	}
	return build(specs, lines)
}

// parseSpec decodes a single question node
func parseSpec(id string, node *yaml.Node) (Spec, ValidationErrors) {
	spec := Spec{ID: id}
	var errs ValidationErrors

	fail := func(field, msg string, line int) {
		errs = append(errs, ValidationError{Field: field, Message: msg, Line: line})
	}

	switch node.Kind {
	case yaml.ScalarNode:
		var lit any
		if err := node.Decode(&lit); err != nil {
			fail(id, err.Error(), node.Line)
			return spec, errs
		}
		def, err := defaultFor(id, lit)
		if err != nil {
			fail(id+".default", err.Error(), node.Line)
		}
		spec.Default, spec.DefaultFunc = def.value, def.fn
		return spec, errs
	case yaml.MappingNode:
	default:
		fail(id, "question must be a mapping or a default value", node.Line)
		return spec, errs
	}

	var raw rawSpec
	if err := node.Decode(&raw); err != nil {
		fail(id, err.Error(), node.Line)
		return spec, errs
	}

	spec.Message = raw.Message
	spec.Type = Type(strings.ToLower(strings.TrimSpace(raw.Type)))
	spec.AllowEmpty = raw.AllowEmpty
	spec.Error = raw.Error

	def, err := defaultFor(id, raw.Default)
	if err != nil {
		fail(id+".default", err.Error(), node.Line)
	}
	spec.Default, spec.DefaultFunc = def.value, def.fn

	for _, opt := range raw.Options {
		v, err := answer.FromLiteral(opt)
		if err != nil {
			fail(id+".options", err.Error(), node.Line)
			continue
		}
		spec.Options = append(spec.Options, v)
	}

	if raw.Regex != "" {
		re, err := regexp.Compile(raw.Regex)
		if err != nil {
			fail(id+".regex", err.Error(), node.Line)
		}
		spec.Regex = re
	}

	if raw.DependsOn.Kind != 0 {
		conds, condErrs := parseConditions(id, &raw.DependsOn)
		spec.DependsOn = conds
		errs = append(errs, condErrs...)
	}

	return spec, errs
}

// parseConditions decodes a depends_on mapping, keeping declaration order
func parseConditions(id string, node *yaml.Node) ([]Condition, ValidationErrors) {
	var errs ValidationErrors
	if node.Kind != yaml.MappingNode {
		return nil, ValidationErrors{{Field: id + ".depends_on", Message: "depends_on must be a mapping", Line: node.Line}}
	}

	var conds []Condition
	for i := 0; i+1 < len(node.Content); i += 2 {
		ref := node.Content[i].Value
		valueNode := node.Content[i+1]
		field := id + ".depends_on." + ref

		cond, err := parseCondition(ref, valueNode)
		if err != nil {
			errs = append(errs, ValidationError{Field: field, Message: err.Error(), Line: valueNode.Line})
			continue
		}
		conds = append(conds, cond)
	}
	return conds, errs
}

// parseCondition handles the three condition forms: value, {not: v}, {in: [...]}
func parseCondition(ref string, node *yaml.Node) (Condition, error) {
	if node.Kind != yaml.MappingNode {
		v, err := decodeLiteral(node)
		if err != nil {
			return Condition{}, err
		}
		return Condition{ID: ref, Op: OpEquals, Values: []answer.Value{v}}, nil
	}

	if len(node.Content) != 2 {
		return Condition{}, fmt.Errorf("condition must be a value, {not: value} or {in: [values]}")
	}

	key, valueNode := node.Content[0].Value, node.Content[1]
	switch key {
	case "not":
		v, err := decodeLiteral(valueNode)
		if err != nil {
			return Condition{}, err
		}
		return Condition{ID: ref, Op: OpNot, Values: []answer.Value{v}}, nil
	case "in":
		if valueNode.Kind != yaml.SequenceNode {
			return Condition{}, fmt.Errorf("\"in\" takes a list of values")
		}
		values := make([]answer.Value, 0, len(valueNode.Content))
		for _, item := range valueNode.Content {
			v, err := decodeLiteral(item)
			if err != nil {
				return Condition{}, err
			}
			values = append(values, v)
		}
		return Condition{ID: ref, Op: OpIn, Values: values}, nil
	default:
		return Condition{}, fmt.Errorf("unknown condition %q (expected not or in)", key)
	}
}

func decodeLiteral(node *yaml.Node) (answer.Value, error) {
	var lit any
	if err := node.Decode(&lit); err != nil {
		return answer.Value{}, err
	}
	return answer.FromLiteral(lit)
}

type resolvedDefault struct {
	value answer.Value
	fn    func(*answer.Answers) answer.Value
}

// defaultFor turns a YAML default into a static value, or into a template
// evaluated against earlier answers when the text contains "{{".
func defaultFor(id string, lit any) (resolvedDefault, error) {
	if s, ok := lit.(string); ok && strings.Contains(s, "{{") {
		tmpl, err := template.New(id).Option("missingkey=zero").Parse(s)
		if err != nil {
			return resolvedDefault{}, fmt.Errorf("invalid default template: %w", err)
		}
		return resolvedDefault{fn: templateDefault(tmpl)}, nil
	}

	v, err := answer.FromLiteral(lit)
	if err != nil {
		return resolvedDefault{}, err
	}
	return resolvedDefault{value: v}, nil
}

// templateDefault renders tmpl with the answers so far and coerces the
// result like a typed reply. Render failures yield no default.
func templateDefault(tmpl *template.Template) func(*answer.Answers) answer.Value {
	return func(answers *answer.Answers) answer.Value {
		data := answers.Map()
		for k, v := range data {
			if v == nil {
				data[k] = ""
			}
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return answer.Empty()
		}
		out := strings.ReplaceAll(buf.String(), "<no value>", "")
		return answer.Coerce(out)
	}
}
