// Package simulation implements the 4-stage trade-setup wizard and its
// risk/reward evaluation.
package simulation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/israyx/sintrade/internal/content"
)

// Stage is the wizard's current question.
type Stage string

const (
	StageDirection   Stage = "direction"
	StageStopLoss    Stage = "stop_loss"
	StageTakeProfit  Stage = "take_profit"
	StageRiskPercent Stage = "risk_percent"
	StageDone        Stage = "done"
)

// Direction is the submitted trade direction.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// State is the mutable per-session wizard state.
type State struct {
	Scenario content.SimulationScenario
	Stage    Stage

	Direction   Direction
	StopLoss    float64
	TakeProfit  float64
	RiskPercent float64
}

// NewState starts the wizard at the direction stage.
func NewState(sc content.SimulationScenario) *State {
	return &State{Scenario: sc, Stage: StageDirection}
}

// InputReason classifies why a stage input was rejected. The wizard stays on
// the same stage so the caller re-prompts without losing state.
type InputReason string

const (
	ReasonBadDirection InputReason = "bad_direction"
	ReasonNotANumber   InputReason = "not_a_number"
	ReasonStopSide     InputReason = "stop_wrong_side"
	ReasonTargetSide   InputReason = "target_wrong_side"
	ReasonRiskRange    InputReason = "risk_out_of_range"
	ReasonWrongStage   InputReason = "wrong_stage"
)

// InputError reports an invalid stage input.
type InputError struct {
	Stage  Stage
	Reason InputReason
}

func (e *InputError) Error() string {
	return "simulation input rejected at stage " + string(e.Stage) + ": " + string(e.Reason)
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ExtractNumber pulls the first numeric token out of free text.
// Thousands separators are tolerated.
func ExtractNumber(text string) (float64, bool) {
	cleaned := strings.ReplaceAll(text, ",", "")
	match := numberPattern.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDirection recognizes a direction inside free text.
func ParseDirection(text string) (Direction, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(lowered, "long") || strings.Contains(lowered, "لونغ"):
		return Long, true
	case strings.Contains(lowered, "short") || strings.Contains(lowered, "شورت"):
		return Short, true
	}
	return "", false
}

// SubmitDirection records the direction and moves to the stop-loss stage.
func (s *State) SubmitDirection(d Direction) error {
	if s.Stage != StageDirection {
		return &InputError{Stage: s.Stage, Reason: ReasonWrongStage}
	}
	if d != Long && d != Short {
		return &InputError{Stage: s.Stage, Reason: ReasonBadDirection}
	}
	s.Direction = d
	s.Stage = StageStopLoss
	return nil
}

// SubmitStopLoss validates the stop sits on the risk side of entry.
func (s *State) SubmitStopLoss(v float64) error {
	if s.Stage != StageStopLoss {
		return &InputError{Stage: s.Stage, Reason: ReasonWrongStage}
	}
	entry := s.Scenario.Entry
	if s.Direction == Long && v >= entry {
		return &InputError{Stage: s.Stage, Reason: ReasonStopSide}
	}
	if s.Direction == Short && v <= entry {
		return &InputError{Stage: s.Stage, Reason: ReasonStopSide}
	}
	s.StopLoss = v
	s.Stage = StageTakeProfit
	return nil
}

// SubmitTakeProfit validates the target sits on the reward side of entry.
func (s *State) SubmitTakeProfit(v float64) error {
	if s.Stage != StageTakeProfit {
		return &InputError{Stage: s.Stage, Reason: ReasonWrongStage}
	}
	entry := s.Scenario.Entry
	if s.Direction == Long && v <= entry {
		return &InputError{Stage: s.Stage, Reason: ReasonTargetSide}
	}
	if s.Direction == Short && v >= entry {
		return &InputError{Stage: s.Stage, Reason: ReasonTargetSide}
	}
	s.TakeProfit = v
	s.Stage = StageRiskPercent
	return nil
}

// SubmitRiskPercent accepts a percent in (0, 100] and completes the wizard.
func (s *State) SubmitRiskPercent(v float64) error {
	if s.Stage != StageRiskPercent {
		return &InputError{Stage: s.Stage, Reason: ReasonWrongStage}
	}
	if v <= 0 || v > 100 {
		return &InputError{Stage: s.Stage, Reason: ReasonRiskRange}
	}
	s.RiskPercent = v
	s.Stage = StageDone
	return nil
}
