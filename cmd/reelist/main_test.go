package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectMovieLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"reelist"},
			want: []string{"reelist"},
		},
		{
			name: "direct movie id first token",
			in:   []string{"reelist", "mov-abc123"},
			want: []string{"reelist", "movies", "show", "mov-abc123"},
		},
		{
			name: "direct movie id after value flag",
			in:   []string{"reelist", "--dir", "./tmp-test-ws", "mov-abc123"},
			want: []string{"reelist", "--dir", "./tmp-test-ws", "movies", "show", "mov-abc123"},
		},
		{
			name: "direct movie id after equals flag",
			in:   []string{"reelist", "--dir=./tmp-test-ws", "mov-abc123"},
			want: []string{"reelist", "--dir=./tmp-test-ws", "movies", "show", "mov-abc123"},
		},
		{
			name: "direct movie id after bool flag",
			in:   []string{"reelist", "--pretty", "mov-abc123"},
			want: []string{"reelist", "--pretty", "movies", "show", "mov-abc123"},
		},
		{
			name: "direct movie id after double dash",
			in:   []string{"reelist", "--dir", "./tmp-test-ws", "--", "mov-abc123"},
			want: []string{"reelist", "--dir", "./tmp-test-ws", "--", "movies", "show", "mov-abc123"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"reelist", "movies", "show", "mov-abc123"},
			want: []string{"reelist", "movies", "show", "mov-abc123"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"reelist", "wat"},
			want: []string{"reelist", "wat"},
		},
		{
			name: "bare prefix not rewritten",
			in:   []string{"reelist", "mov-"},
			want: []string{"reelist", "mov-"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectMovieLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectMovieLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
