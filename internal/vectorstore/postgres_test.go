package vectorstore

import (
	"strings"
	"testing"
)

func TestChunksTableDDLUsesConfiguredVectorSize(t *testing.T) {
	ddl := chunksTableDDL(1024)
	if !strings.Contains(ddl, "vector(1024)") {
		t.Errorf("DDL does not carry the configured dimension:\n%s", ddl)
	}
	if strings.Contains(ddl, "vector(768)") {
		t.Errorf("DDL still hardcodes the default dimension:\n%s", ddl)
	}
}

func TestVectorLiteral(t *testing.T) {
	tests := []struct {
		in   []float32
		want string
	}{
		{nil, "[]"},
		{[]float32{1}, "[1]"},
		{[]float32{0.5, -2, 3.25}, "[0.5,-2,3.25]"},
	}
	for _, tt := range tests {
		if got := vectorLiteral(tt.in); got != tt.want {
			t.Errorf("vectorLiteral(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
