package pdfreader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorFromInfo(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   string
	}{
		{name: "plain name", author: "Jane Doe", want: "Jane Doe"},
		{name: "empty", author: "", want: ""},
		{name: "institutional only", author: "Technical University of Denmark", want: ""},
		{name: "institutional exact short form", author: "DTU Compute", want: ""},
		{
			name:   "name with affiliation in parentheses",
			author: "Jane Doe (DTU Compute)",
			want:   "Jane Doe",
		},
		{
			name:   "name before institutional suffix",
			author: "Jane Doe, Technical University of Denmark",
			want:   "Jane Doe",
		},
		{
			name:   "two authors joined by ampersand",
			author: "Jane Doe & John Smith",
			want:   "Jane Doe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AuthorFromInfo(DocumentInfo{Author: tt.author}))
		})
	}
}

func TestAuthorFromPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name:  "by prefix",
			pages: []string{"Some Thesis Title\nby Jane Doe\nJune 2023"},
			want:  "Jane Doe",
		},
		{
			name:  "author label with colon",
			pages: []string{"Some Thesis Title\nAuthor: John Smith"},
			want:  "John Smith",
		},
		{
			name:  "name standing on its own line",
			pages: []string{"Some Thesis Title\nJane Doe\nJune 2023"},
			want:  "Jane Doe",
		},
		{
			name:  "no pages",
			pages: nil,
			want:  "",
		},
		{
			name:  "no name-like text",
			pages: []string{"lowercase text only\nwithout any names"},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AuthorFromPages(tt.pages))
		})
	}
}

func TestAbstractFromPages(t *testing.T) {
	longPage := "abstract " + strings.Repeat("filler ", 400)

	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name: "dedicated abstract page",
			pages: []string{
				"Title page",
				"Abstract\nThis thesis investigates layout optimization.",
			},
			want: "This thesis investigates layout optimization.",
		},
		{
			name: "short page mentioning abstract",
			pages: []string{
				"Summary\nAbstract: This work studies simulated annealing.\nKeywords: optimization",
			},
			want: "This work studies simulated annealing. Keywords: optimization",
		},
		{
			name:  "long page mentioning abstract is skipped",
			pages: []string{longPage},
			want:  "",
		},
		{
			name:  "no abstract anywhere",
			pages: []string{"Introduction\nBody text."},
			want:  "",
		},
		{
			name:  "heading case insensitive",
			pages: []string{"ABSTRACT\nContent here."},
			want:  "Content here.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AbstractFromPages(tt.pages))
		})
	}
}
