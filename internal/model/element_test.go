package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestElementLabel(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want string
	}{
		{"text first", Element{Text: "OK", Description: "confirm", Class: "Button"}, "OK"},
		{"description", Element{Description: "confirm", ResourceID: "ok_btn"}, "confirm"},
		{"resource id", Element{ResourceID: "ok_btn", Class: "Button"}, "ok_btn"},
		{"class", Element{Class: "Button"}, "Button"},
		{"empty", Element{}, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementJSONOmitsEmpty(t *testing.T) {
	b, err := json.Marshal(Element{ID: 3, Class: "Button", Flags: "C"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, absent := range []string{"txt", "desc", "res", "bounds"} {
		if strings.Contains(s, absent) {
			t.Errorf("empty field %q present in %s", absent, s)
		}
	}
	if !strings.Contains(s, `"id":3`) || !strings.Contains(s, `"cls":"Button"`) {
		t.Errorf("unexpected encoding: %s", s)
	}
}
