package dialog

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
)

type launchCall struct {
	Name string
	Args []string
}

// fakeLauncher answers from a table keyed by program name; programs missing
// from the table are reported as not found.
type fakeLauncher struct {
	results map[string]domain.LaunchResult
	calls   []launchCall
}

func (f *fakeLauncher) Launch(_ context.Context, name string, args []string) domain.LaunchResult {
	f.calls = append(f.calls, launchCall{Name: name, Args: args})
	if res, ok := f.results[name]; ok {
		return res
	}
	return domain.LaunchResult{Status: domain.LaunchToolNotFound}
}

func (f *fakeLauncher) called(name string) bool {
	for _, c := range f.calls {
		if c.Name == name {
			return true
		}
	}
	return false
}

func exited(code int) domain.LaunchResult {
	return domain.LaunchResult{Status: domain.LaunchExited, ExitCode: code}
}

func TestPrompter_Kdialog(t *testing.T) {
	tests := []struct {
		name string
		code int
		want bool
	}{
		{name: "Yes", code: 0, want: true},
		{name: "No", code: 1, want: false},
		{name: "Cancelled", code: 2, want: false},
		{name: "Crashed", code: -1, want: false},
		{name: "Internal Error", code: 255, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &fakeLauncher{results: map[string]domain.LaunchResult{
				"kdialog": exited(tt.code),
				"zenity":  exited(0),
			}}

			got := NewPrompter(l, nil).Confirm(context.Background())
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if l.called("zenity") {
				t.Error("zenity must not run when kdialog is present")
			}
		})
	}
}

func TestPrompter_ZenityFallback(t *testing.T) {
	tests := []struct {
		name string
		code int
		want bool
	}{
		{name: "Yes", code: 0, want: true},
		{name: "No", code: 1, want: false},
		{name: "Timeout", code: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &fakeLauncher{results: map[string]domain.LaunchResult{
				"zenity": exited(tt.code),
			}}

			got := NewPrompter(l, nil).Confirm(context.Background())
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if len(l.calls) != 2 {
				t.Fatalf("Expected 2 launches, got %d", len(l.calls))
			}
		})
	}
}

func TestPrompter_NoTools(t *testing.T) {
	l := &fakeLauncher{}
	p := NewPrompter(l, nil)

	if p.Confirm(context.Background()) {
		t.Error("Expected false with no dialog tools")
	}
	if o := p.Outcome(context.Background()); o != domain.ToolUnavailable {
		t.Errorf("Expected ToolUnavailable, got %s", o)
	}
}

func TestPrompter_LaunchFailureIsDecline(t *testing.T) {
	l := &fakeLauncher{results: map[string]domain.LaunchResult{
		"kdialog": {Status: domain.LaunchFailed},
		"zenity":  exited(0),
	}}

	if NewPrompter(l, nil).Confirm(context.Background()) {
		t.Error("Expected false when kdialog fails to start")
	}
	if l.called("zenity") {
		t.Error("Only a missing kdialog may fall back to zenity")
	}
}

type stubAsker struct {
	outcome domain.Outcome
	asked   int
}

func (s *stubAsker) Ask(context.Context) domain.Outcome {
	s.asked++
	return s.outcome
}

func TestPrompter_Fallback(t *testing.T) {
	fallback := &stubAsker{outcome: domain.Confirmed}

	l := &fakeLauncher{}
	if !NewPrompter(l, fallback).Confirm(context.Background()) {
		t.Error("Expected fallback to answer when GUI tools are missing")
	}

	l = &fakeLauncher{results: map[string]domain.LaunchResult{"zenity": exited(1)}}
	fallback.asked = 0
	if NewPrompter(l, fallback).Confirm(context.Background()) {
		t.Error("Expected zenity's decline to be final")
	}
	if fallback.asked != 0 {
		t.Errorf("Fallback should not run after zenity answered, ran %d times", fallback.asked)
	}
}

func TestToolArgs(t *testing.T) {
	l := &fakeLauncher{}
	NewPrompter(l, nil).Confirm(context.Background())

	want := []launchCall{
		{Name: "kdialog", Args: []string{"--yesno", domain.PromptMessage, "--title", domain.PromptTitle}},
		{Name: "zenity", Args: []string{"--question", "--title=" + domain.PromptTitle, "--text=" + domain.PromptMessage}},
	}
	if diff := cmp.Diff(want, l.calls); diff != "" {
		t.Errorf("launch calls mismatch (-want +got):\n%s", diff)
	}
}
