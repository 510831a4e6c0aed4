package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no comments",
			in:   "const a = 1;\nconst b = a / 2;\n",
			want: "const a = 1;\nconst b = a / 2;\n",
		},
		{
			name: "comment only line is dropped",
			in:   "// setup\nconst a = 1;\n",
			want: "const a = 1;\n",
		},
		{
			name: "indented comment line is dropped",
			in:   "function f() {\n    // body\n    return 1;\n}\n",
			want: "function f() {\n    return 1;\n}\n",
		},
		{
			name: "trailing line comment",
			in:   "const a = 1; // one\n",
			want: "const a = 1;\n",
		},
		{
			name: "multi-line block comment",
			in:   "/**\n * Entry point\n * @param x\n */\nrun(x);\n",
			want: "run(x);\n",
		},
		{
			name: "inline block comment",
			in:   "call(a, /* unused */ b);\n",
			want: "call(a,  b);\n",
		},
		{
			name: "block comment between words",
			in:   "let/* x */y = 2;\n",
			want: "let y = 2;\n",
		},
		{
			name: "code after block comment end is kept",
			in:   "/* start\nend */ go();\n",
			want: " go();\n",
		},
		{
			name: "url in double quoted string",
			in:   "fetch(\"http://example.com/a\"); // remote\n",
			want: "fetch(\"http://example.com/a\");\n",
		},
		{
			name: "comment markers in single quotes",
			in:   "const s = '/* not a comment */';\n",
			want: "const s = '/* not a comment */';\n",
		},
		{
			name: "escaped quote in string",
			in:   "const s = \"a \\\" // b\";\n",
			want: "const s = \"a \\\" // b\";\n",
		},
		{
			name: "template literal spanning lines",
			in:   "const t = `line\n// kept\n`;\n",
			want: "const t = `line\n// kept\n`;\n",
		},
		{
			name: "crlf line endings",
			in:   "a(); // x\r\n// y\r\nb();\r\n",
			want: "a();\r\nb();\r\n",
		},
		{
			name: "no trailing newline",
			in:   "a(); // end",
			want: "a();",
		},
		{
			name: "blank lines without comments are kept",
			in:   "a();\n\nb();\n",
			want: "a();\n\nb();\n",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Strip([]byte(tt.in))))
		})
	}
}

func TestStrip_Idempotent(t *testing.T) {
	in := []byte("/* header */\nimport x from 'y'; // dep\nx();\n")
	once := Strip(in)
	assert.Equal(t, string(once), string(Strip(once)))
}
