package lives

import (
	"fmt"
	"strings"
	"testing"

	"github.com/df-mc/dragonfly/server/cmd"
	"golang.org/x/text/language"
)

// consoleSource is a command source that is not a player. The embedded
// cmd.Source is never called.
type consoleSource struct {
	cmd.Source
}

func (consoleSource) Name() string { return "console" }

func outputErrors(o *cmd.Output) []string {
	var out []string
	for _, err := range o.Errors() {
		out = append(out, err.Error())
	}
	return out
}

func outputMessages(o *cmd.Output) []string {
	var out []string
	for _, m := range o.Messages() {
		out = append(out, fmt.Sprint(m))
	}
	return out
}

func hasLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestLivesSelfFromConsoleRequiresTarget(t *testing.T) {
	d, _, _ := newTestDispatcher(DefaultConfig())
	o := &cmd.Output{}

	livesSelf{d: d, ops: NewOperators()}.Run(consoleSource{}, o, nil)
	if !hasLine(outputErrors(o), "A target player is required") {
		t.Fatalf("errors = %q, want target required", outputErrors(o))
	}
	if len(o.Messages()) != 0 {
		t.Fatalf("unexpected output %q", outputMessages(o))
	}
}

func TestLivesSelfFromPlayer(t *testing.T) {
	d, s, _ := newTestDispatcher(DefaultConfig())
	p := newFakePlayer("Steve")
	s.data.Lives().Set(p.UUID(), 6)
	o := &cmd.Output{}

	livesSelf{d: d, ops: NewOperators("Steve")}.Run(p, o, nil)
	if !hasLine(outputMessages(o), "Steve has 6/10 lives") {
		t.Fatalf("messages = %q", outputMessages(o))
	}
}

func TestLivesShow(t *testing.T) {
	d, s, _ := newTestDispatcher(DefaultConfig())
	p := newFakePlayer("Alex")
	s.data.Lives().Set(p.UUID(), 2)
	o := &cmd.Output{}

	livesShow{d: d, Target: []cmd.Target{p}}.Run(consoleSource{}, o, nil)
	if !hasLine(outputMessages(o), "Alex has 2/10 lives") {
		t.Fatalf("messages = %q", outputMessages(o))
	}
}

func TestLivesSet(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantLives int
		wantError string
		wantPrint string
	}{
		{"in range", 4, 4, "", "Set the lives of Alex to 4/10"},
		{"lower bound", 1, 1, "", "Set the lives of Alex to 1/10"},
		{"zero", 0, MaxLives, "Lives must be between 1 and 10", ""},
		{"above max", 11, MaxLives, "Lives must be between 1 and 10", ""},
		{"negative", -7, MaxLives, "Lives must be between 1 and 10", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s, _ := newTestDispatcher(DefaultConfig())
			p := newFakePlayer("Alex")
			o := &cmd.Output{}

			livesSet{d: d, Target: []cmd.Target{p}, Value: tt.value}.Run(consoleSource{}, o, nil)
			if got := s.Lives(p); got != tt.wantLives {
				t.Fatalf("lives = %d, want %d", got, tt.wantLives)
			}
			if tt.wantError != "" && !hasLine(outputErrors(o), tt.wantError) {
				t.Fatalf("errors = %q, want %q", outputErrors(o), tt.wantError)
			}
			if tt.wantPrint != "" && !hasLine(outputMessages(o), tt.wantPrint) {
				t.Fatalf("messages = %q, want %q", outputMessages(o), tt.wantPrint)
			}
			if tt.wantError == "" && len(o.Errors()) != 0 {
				t.Fatalf("unexpected errors %q", outputErrors(o))
			}
		})
	}
}

func TestLivesCommandAllow(t *testing.T) {
	d, _, _ := newTestDispatcher(DefaultConfig())
	ops := NewOperators("Steve")
	op, stranger := newFakePlayer("steve"), newFakePlayer("Alex")

	for _, r := range []cmd.Allower{livesSelf{d: d, ops: ops}, livesShow{d: d, ops: ops}, livesSet{d: d, ops: ops}} {
		if !r.Allow(consoleSource{}) {
			t.Fatalf("%T refused the console", r)
		}
		if !r.Allow(op) {
			t.Fatalf("%T refused an operator", r)
		}
		if r.Allow(stranger) {
			t.Fatalf("%T allowed a non-operator player", r)
		}
	}
}

func TestLivesCommandTranslatesForPlayerSource(t *testing.T) {
	d, _, _ := newTestDispatcher(DefaultConfig())
	p := newFakePlayer("Ivan")
	p.locale = language.Russian
	o := &cmd.Output{}

	livesSet{d: d, Target: []cmd.Target{p}, Value: 99}.Run(p, o, nil)
	if !hasLine(outputErrors(o), "Количество жизней должно быть от 1 до 10") {
		t.Fatalf("errors = %q", outputErrors(o))
	}
}
