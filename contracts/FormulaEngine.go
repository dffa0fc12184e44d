package contracts

// FormulaEngine evaluates a marker-stripped formula body against the
// grid it was built for. Evaluation is total: faults are rendered as
// display error codes, never returned.
type FormulaEngine interface {
	Evaluate(body string) string
}
