package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestResultMergeAndBlocking(t *testing.T) {
	var result Result
	result.Merge(Result{Violations: []Violation{{Rule: "warn", Severity: SeverityWarn}}})
	if result.HasBlocking() {
		t.Fatalf("expected no blocking violations")
	}
	result.Merge(Result{Violations: []Violation{{Rule: "block", Severity: SeverityBlock}}})
	if !result.HasBlocking() {
		t.Fatalf("expected blocking violation")
	}
	err := RuleViolationError{Result: result}
	if err.Error() == "" {
		t.Fatalf("expected error string")
	}
}

func TestResultMergeEmptyInput(t *testing.T) {
	original := Result{Violations: []Violation{{Rule: "existing", Severity: SeverityWarn}}}
	original.Merge(Result{})
	if len(original.Violations) != 1 || original.Violations[0].Rule != "existing" {
		t.Fatalf("expected original violations to remain, got %+v", original.Violations)
	}
}

func TestRulesEngineEvaluate(t *testing.T) {
	engine := NewRulesEngine()
	engine.Register(staticRule{"warn"})
	res, err := engine.Evaluate(context.Background(), emptyView{}, nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 1 {
		t.Fatalf("expected violation")
	}
}

type staticRule struct{ name string }

func (r staticRule) Name() string { return r.name }

func (r staticRule) Evaluate(ctx context.Context, view RuleView, changes []Change) (Result, error) {
	return Result{Violations: []Violation{{Rule: r.name, Severity: SeverityWarn}}}, nil
}

type emptyView struct{}

func (emptyView) Find(uuid.UUID) (*Entity, bool) { return nil, false }
func (emptyView) List(Kind, bool) []*Entity      { return nil }

type failingRule struct{}

func (failingRule) Name() string { return "broken" }

func (failingRule) Evaluate(context.Context, RuleView, []Change) (Result, error) {
	return Result{}, fmt.Errorf("boom")
}

func TestRulesEngineEvaluateWrapsRuleErrors(t *testing.T) {
	engine := NewRulesEngine()
	engine.Register(nil)
	engine.Register(staticRule{"warn"})
	engine.Register(failingRule{})
	if got := engine.Rules(); len(got) != 2 || got[1] != "broken" {
		t.Fatalf("unexpected rule names %v", got)
	}
	_, err := engine.Evaluate(context.Background(), emptyView{}, nil)
	if err == nil || !strings.Contains(err.Error(), "rule broken") {
		t.Fatalf("expected wrapped rule error, got %v", err)
	}
}

func TestRuleViolationErrorNamesBlockingRule(t *testing.T) {
	err := error(RuleViolationError{Result: Result{Violations: []Violation{
		{Rule: "soft", Severity: SeverityWarn},
		{Rule: "hard", Severity: SeverityBlock, Message: "latitude out of range"},
	}}})
	if !strings.Contains(err.Error(), "hard") || !strings.Contains(err.Error(), "latitude") {
		t.Fatalf("unexpected message %q", err.Error())
	}
	var rv RuleViolationError
	if !errors.As(err, &rv) || len(rv.Result.Violations) != 2 {
		t.Fatalf("expected errors.As to recover the result")
	}
}
