package match

import (
	"github.com/Arvind-puthucode/MiniAxiom/pkg/miniaxiom/expr"
)

// ApplyRule finds every satisfying substitution for the rule's premises
// against the working facts and instantiates the conclusion under each,
// in substitution-discovery order. Conclusions already present in the
// working set are dropped. Distinct substitutions can still instantiate
// the same conclusion, so the returned list may contain duplicates: the
// caller dedupes incrementally as it inserts into its own set.
func ApplyRule(rule expr.Rule, working *expr.FactSet) []expr.Fact {
	var out []expr.Fact
	for _, s := range FactsList(rule.Premises, working.Facts()) {
		derived := s.ApplyFact(rule.Conclusion)
		if !working.Contains(derived) {
			out = append(out, derived)
		}
	}
	return out
}

// CanApplyRule reports whether at least one satisfying substitution
// exists for the rule's premises.
func CanApplyRule(rule expr.Rule, working *expr.FactSet) bool {
	return len(FactsList(rule.Premises, working.Facts())) > 0
}
