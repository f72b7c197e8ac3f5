package lexer

import (
	"testing"

	"github.com/rill-lang/rillc/internal/token"
)

func TestLexerStringLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"double quoted", `"hello"`, "hello"},
		{"single quoted", `'hello'`, "hello"},
		{"escaped quote", `'it''s'`, "it's"},
		{"empty", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.src)
			tok := l.NextToken()
			if tok.Type != token.STRING {
				t.Fatalf("type = %s, want STRING", tok.Type)
			}
			if tok.Literal != tt.want {
				t.Fatalf("literal = %q, want %q", tok.Literal, tt.want)
			}
		})
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := New(`"hello`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", tok.Type)
	}
	if l.Err() == nil {
		t.Fatal("expected lexer error for unterminated string")
	}
}
