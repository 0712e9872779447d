package chain

import "encoding/json"

type stepJSON struct {
	RuleName    string   `json:"rule_name"`
	Premises    []string `json:"premises"`
	DerivedFact string   `json:"derived_fact"`
	StepNumber  int      `json:"step_number"`
}

type resultJSON struct {
	Success            bool       `json:"success"`
	GoalAchieved       bool       `json:"goal_achieved"`
	Steps              []stepJSON `json:"steps"`
	FinalFactsCount    int        `json:"final_facts_count"`
	IterationsUsed     int        `json:"iterations_used"`
	TimeElapsedSeconds float64    `json:"time_elapsed_seconds"`
	ErrorMessage       string     `json:"error_message,omitempty"`
}

// MarshalJSON renders the result in the stable wire shape consumed by
// downstream explainers:
//
//	{success, goal_achieved, steps:[{rule_name, premises, derived_fact,
//	 step_number}], final_facts_count, iterations_used,
//	 time_elapsed_seconds, error_message?}
func (r ProofResult) MarshalJSON() ([]byte, error) {
	steps := make([]stepJSON, len(r.Steps))
	for i, s := range r.Steps {
		premises := make([]string, len(s.Premises))
		for j, p := range s.Premises {
			premises[j] = p.String()
		}
		steps[i] = stepJSON{
			RuleName:    s.RuleName,
			Premises:    premises,
			DerivedFact: s.Derived.String(),
			StepNumber:  s.Index,
		}
	}
	return json.Marshal(resultJSON{
		Success:            r.Success,
		GoalAchieved:       r.GoalAchieved,
		Steps:              steps,
		FinalFactsCount:    len(r.FinalFacts),
		IterationsUsed:     r.Iterations,
		TimeElapsedSeconds: r.Elapsed.Seconds(),
		ErrorMessage:       r.ErrorMessage,
	})
}
