package cmd

import (
	"testing"
	"time"

	"github.com/agentbridge/agentbridge/internal/model"
	"github.com/agentbridge/agentbridge/internal/session"
)

func TestMatchesCondition(t *testing.T) {
	elements := []model.Element{
		{ID: 0, Text: "Welcome back"},
		{ID: 1, Description: "Search field"},
		{ID: 2, ResourceID: "progress_bar"},
	}

	tests := []struct {
		name      string
		text, res string
		want      bool
	}{
		{"text substring", "welcome", "", true},
		{"description substring", "search", "", true},
		{"resource id", "", "progress_bar", true},
		{"no match", "goodbye", "", false},
		{"res exact only", "", "progress", false},
		{"text and res on different elements", "welcome", "progress_bar", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesCondition(elements, tt.text, tt.res); got != tt.want {
				t.Errorf("matchesCondition(%q, %q) = %v, want %v", tt.text, tt.res, got, tt.want)
			}
		})
	}
}

func TestPollConditionImmediateMatch(t *testing.T) {
	sess := session.New(&fakeDevice{dump: `<hierarchy>
		<node class="a.B" text="Welcome" clickable="true" bounds="[0,0][10,10]"/>
	</hierarchy>`})

	result, err := pollCondition(sess, "welcome", "", false, time.Second, time.Millisecond)
	if err != nil {
		t.Fatalf("pollCondition: %v", err)
	}
	if !result.Success {
		t.Errorf("result = %+v", result)
	}
}

func TestPollConditionTimeout(t *testing.T) {
	sess := session.New(&fakeDevice{dump: `<hierarchy></hierarchy>`})

	_, err := pollCondition(sess, "never", "", false, 20*time.Millisecond, 5*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestPollConditionGone(t *testing.T) {
	// Nothing matches, so with gone=true the condition holds immediately.
	sess := session.New(&fakeDevice{dump: `<hierarchy></hierarchy>`})

	result, err := pollCondition(sess, "loading", "", true, time.Second, time.Millisecond)
	if err != nil {
		t.Fatalf("pollCondition: %v", err)
	}
	if !result.Success {
		t.Errorf("result = %+v", result)
	}
}
