// Package question defines questionnaire registries.
//
// # Overview
//
// A Registry is the ordered list of questions one questionnaire asks. Order
// is the declaration order and never changes while a questionnaire runs.
// Each question is a Spec:
//
//	question.Spec{
//	    ID:      "country",
//	    Message: "What country do you live in?",
//	    Default: answer.Text("United States"),
//	}
//
// # Dependencies
//
// A question can be gated on earlier answers. All conditions must hold:
//
//	question.Spec{
//	    ID:        "state",
//	    DependsOn: []question.Condition{question.Equals("country", "US")},
//	}
//
// # YAML Registries
//
// Registries can be loaded from YAML. Mapping order is preserved:
//
//	country:
//	  message: What country do you live in?
//	  default: United States
//	state:
//	  options: [CA, NY, TX]
//	  depends_on:
//	    country: United States
//
// Conditions take three forms: a bare value (must equal), {not: value}
// (must differ) and {in: [values]} (must be one of). A default containing
// "{{" is a text/template executed against the answers given so far.
//
// # Validation
//
// New and Parse reject malformed registries with an error wrapping
// ErrInvalidConfiguration: empty or duplicate ids, unknown types, and
// dependencies on questions that are not declared earlier.
package question
