package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/pradeeppj/checkout-study/internal/flow"
)

// Modality is the interaction channel assigned to a checkout step.
type Modality string

const (
	ModalityStandard Modality = "standard"
	ModalityVoice    Modality = "voice"
	ModalityChat     Modality = "chat"
)

// Valid reports whether m is one of the three supported modalities.
func (m Modality) Valid() bool {
	switch m {
	case ModalityStandard, ModalityVoice, ModalityChat:
		return true
	}
	return false
}

// DefaultModality fills steps the service returned no decision for. It is a
// literal fallback for missing data, not a semantically preferred channel.
const DefaultModality = ModalityStandard

const missingRationale = "No decision returned for this step."

// Decision is one entry of the plan returned by the planning service.
type Decision struct {
	StepID    string   `json:"step_id"`
	Mode      Modality `json:"preferred_mode"`
	Rationale string   `json:"rationale"`
}

// FlowPlan is the full structured response of the planning service.
type FlowPlan struct {
	Plan []Decision `json:"plan"`
}

// Record is one emitted output line. Rationale is populated only when
// rationale emission is enabled.
type Record struct {
	StepID    string   `json:"step_id"`
	Mode      Modality `json:"llm_mode"`
	Rationale string   `json:"rationale,omitempty"`
}

// PlanningService produces a modality plan for a step sequence. The call is
// made exactly once per run; any failure is fatal for the invocation.
type PlanningService interface {
	DecideFlowPlan(ctx context.Context, steps []flow.Step) (*FlowPlan, error)
}

// ServiceError wraps failures of the planning service: transport errors,
// authentication errors, and responses that violate the plan schema.
type ServiceError struct {
	Reason string
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("planning service: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("planning service: %s", e.Reason)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Validate checks a returned plan against the response contract: every entry
// needs a non-empty step id and a modality from the three-member enumeration.
// Violations are reported as a ServiceError.
func (p *FlowPlan) Validate() error {
	for i, d := range p.Plan {
		if d.StepID == "" {
			return &ServiceError{Reason: fmt.Sprintf("plan entry %d has an empty step_id", i)}
		}
		if !d.Mode.Valid() {
			return &ServiceError{Reason: fmt.Sprintf("plan entry %q has unknown modality %q", d.StepID, d.Mode)}
		}
	}
	return nil
}

// Reconcile merges a returned plan back onto the built step sequence. Output
// order follows the step sequence, never the plan. Steps the plan does not
// cover get the default decision instead of failing.
func Reconcile(steps []flow.Step, plan *FlowPlan) []Record {
	byID := make(map[string]Decision, len(plan.Plan))
	for _, d := range plan.Plan {
		if _, ok := byID[d.StepID]; ok {
			continue
		}
		byID[d.StepID] = d
	}

	records := make([]Record, 0, len(steps))
	for _, s := range steps {
		d, ok := byID[s.StepID]
		if !ok {
			records = append(records, Record{
				StepID:    s.StepID,
				Mode:      DefaultModality,
				Rationale: missingRationale,
			})
			continue
		}
		records = append(records, Record{
			StepID:    d.StepID,
			Mode:      d.Mode,
			Rationale: d.Rationale,
		})
	}
	return records
}

// Planner drives one planning run: issue the single service call, reconcile
// the plan against flow order, and write one JSON record per line.
type Planner struct {
	Service PlanningService
	Logger  zerolog.Logger

	// EmitRationale includes the rationale field in output records. The
	// rationale is always requested and reconciled; by default it is
	// dropped at emission time.
	EmitRationale bool
}

// Run executes a single planning invocation over the given steps, writing
// records to w in flow order. No records are written if the service fails.
func (p *Planner) Run(ctx context.Context, steps []flow.Step, w io.Writer) error {
	p.Logger.Info().Int("steps", len(steps)).Msg("requesting flow plan")

	plan, err := p.Service.DecideFlowPlan(ctx, steps)
	if err != nil {
		return err
	}
	if err := plan.Validate(); err != nil {
		return err
	}

	p.Logger.Info().Int("decisions", len(plan.Plan)).Msg("flow plan received")

	records := Reconcile(steps, plan)
	enc := json.NewEncoder(w)
	for _, r := range records {
		if !p.EmitRationale {
			r.Rationale = ""
		}
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write record for step %s: %w", r.StepID, err)
		}
	}
	return nil
}
