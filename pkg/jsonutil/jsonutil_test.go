package jsonutil

import (
	"errors"
	"testing"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "markdown fenced",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "surrounded by prose",
			input: `Here is the result: {"a": {"b": 2}} hope it helps`,
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "a } inside"} trailing`,
			want:  `{"text": "a } inside"}`,
		},
		{
			name:  "escaped quotes",
			input: `{"text": "she said \"hi\""}`,
			want:  `{"text": "she said \"hi\""}`,
		},
		{
			name:  "stray brace before payload",
			input: `the schema {steps} looks like this: {"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "unclosed brace before payload",
			input: `open { never closes, but {"a": 1} does`,
			want:  `{"a": 1}`,
		},
		{
			name:  "no object",
			input: "nothing here",
			err:   ErrNoObject,
		},
		{
			name:  "unbalanced",
			input: `{"a": 1`,
			err:   ErrNoObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.input)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractArray(t *testing.T) {
	t.Run("prose wrapped", func(t *testing.T) {
		got, err := ExtractArray(`Sure! [1, 2, 3] as requested.`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "[1, 2, 3]" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested arrays", func(t *testing.T) {
		got, err := ExtractArray(`[[1], [2]]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "[[1], [2]]" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("stray bracket before payload", func(t *testing.T) {
		got, err := ExtractArray(`per the [schema] above: [1, 2]`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "[1, 2]" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := ExtractArray("{}"); !errors.Is(err, ErrNoArray) {
			t.Errorf("expected ErrNoArray, got %v", err)
		}
	})
}
