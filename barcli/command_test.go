package main

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		code int
		arg  string
	}{
		{"quit", QUIT, ""},
		{"parse {B1}hi {/B}there", PARSE, "{B1}hi {/B}there"},
		{"  WIDTH abc", WIDTH, "abc"},
		{"faces äö", FACES, "äö"},
		{"cache", CACHE, ""},
		{"frobnicate now", HELP, "frobnicate"},
	}
	for _, tt := range tests {
		op := parseCommand(tt.line)
		if op.code != tt.code || op.arg != tt.arg {
			t.Errorf("%q: have (%s, %q), want (%s, %q)", tt.line,
				opNames[op.code], op.arg, opNames[tt.code], tt.arg)
		}
	}
}
