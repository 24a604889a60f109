package main

import "testing"

func TestBalanced(t *testing.T) {
	tests := []struct {
		source   string
		expected bool
	}{
		{"42", true},
		{"{add: [1, 2]}", true},
		{"{add: [1,", false},
		{"{add: [1,\n 2]}", true},
		{`{var: "a["}`, true},
		{`{var: 'a{'}`, true},
		{`{var: "a\"["}`, true},
		{`{var: 'it''s ['}`, true},
		{"{var: don't}", true},
		{`{var: "open`, false},
		{`["}", {add: [1`, false},
	}
	for _, tt := range tests {
		if balanced(tt.source) != tt.expected {
			t.Errorf("balanced(%q) should be %v", tt.source, tt.expected)
		}
	}
}
