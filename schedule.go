package bookkeeping

import (
	"fmt"
	"strings"
	"time"
)

// ActionType says what a scheduled action instantiates when it fires.
type ActionType string

const (
	ActionTransaction ActionType = "TRANSACTION"
	ActionExport      ActionType = "EXPORT"
)

// ParseActionType parses a string into an ActionType.
func ParseActionType(s string) (ActionType, error) {
	switch strings.ToUpper(s) {
	case "TRANSACTION":
		return ActionTransaction, nil
	case "EXPORT":
		return ActionExport, nil
	default:
		return "", fmt.Errorf("unknown action type %q", s)
	}
}

// ScheduleState is the observable state of a scheduled action.
type ScheduleState int

const (
	// StatePending means the action is enabled but its start time has not
	// been reached yet.
	StatePending ScheduleState = iota
	// StateActive means the action is eligible to fire.
	StateActive
	// StateDisabled means the scheduler skips the action; its execution
	// count is retained and it can be re-enabled.
	StateDisabled
	// StateExhausted is terminal: the action must never fire again.
	StateExhausted
)

func (s ScheduleState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateActive:
		return "active"
	case StateDisabled:
		return "disabled"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// ScheduledAction ties a Recurrence to a template (a transaction template or
// an export job) and tracks execution progress. It is the only mutable piece
// of the core; callers embedding it in a concurrent host must serialize
// firing per action.
type ScheduledAction struct {
	EntityMeta
	ActionType     ActionType
	TemplateUID    string // reference to the template this action instantiates
	Recurrence     Recurrence
	StartTime      time.Time
	EndTime        time.Time // zero means open-ended
	LastRunTime    time.Time
	TotalFrequency int // planned number of occurrences, 0 means unlimited
	ExecutionCount int
	Enabled        bool
	Tag            string
}

// NewScheduledAction creates an enabled action starting at start.
func NewScheduledAction(actionType ActionType, templateUID string, recurrence Recurrence, start time.Time) *ScheduledAction {
	return &ScheduledAction{
		EntityMeta:  NewEntityMeta(),
		ActionType:  actionType,
		TemplateUID: templateUID,
		Recurrence:  recurrence,
		StartTime:   start,
		Enabled:     true,
	}
}

// exhausted reports whether the action has reached its end time or its
// planned occurrence count.
func (a *ScheduledAction) exhausted(now time.Time) bool {
	if !a.EndTime.IsZero() && !now.Before(a.EndTime) {
		return true
	}
	return a.TotalFrequency > 0 && a.ExecutionCount >= a.TotalFrequency
}

// State returns the action's state as observed at now. Exhaustion wins over
// everything; a disabled action stays disabled until re-enabled.
func (a *ScheduledAction) State(now time.Time) ScheduleState {
	if a.exhausted(now) {
		return StateExhausted
	}
	if !a.Enabled {
		return StateDisabled
	}
	if now.Before(a.StartTime) {
		return StatePending
	}
	return StateActive
}

// SetEnabled toggles the action. Re-enabling keeps the execution count.
func (a *ScheduledAction) SetEnabled(enabled bool) {
	a.Enabled = enabled
	a.Touch()
}

// Due reports whether an active action is ready to fire at now: either it
// never ran, or at least one recurrence period elapsed since the last run.
func (a *ScheduledAction) Due(now time.Time) bool {
	if a.State(now) != StateActive {
		return false
	}
	if a.LastRunTime.IsZero() {
		return true
	}
	return now.Sub(a.LastRunTime) >= a.Recurrence.PeriodLength()
}

// Fire records one execution at now. It is a no-op returning false unless
// the action is Active; otherwise it stamps the last run time, increments
// the execution count, and returns true. Exhaustion is re-evaluated on the
// next State call, so the count never exceeds TotalFrequency.
func (a *ScheduledAction) Fire(now time.Time) bool {
	if a.State(now) != StateActive {
		return false
	}
	a.LastRunTime = now
	a.ExecutionCount++
	a.Touch()
	return true
}

// ApproxEndTime estimates when the action completes from its planned
// occurrence count. It is only meaningful when no explicit end time was set
// but a total frequency was; the estimate inherits the recurrence's
// approximate month/year lengths.
func (a *ScheduledAction) ApproxEndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.TotalFrequency) * a.Recurrence.PeriodLength())
}

// RepeatDescription returns a human-readable summary of the schedule and its
// progress, e.g. "every 2 weeks, 3 of 5 done".
func (a *ScheduledAction) RepeatDescription() string {
	desc := a.Recurrence.Description()
	if a.TotalFrequency > 0 {
		return fmt.Sprintf("%s, %d of %d done", desc, a.ExecutionCount, a.TotalFrequency)
	}
	return desc
}
