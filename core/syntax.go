package core

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Syntax describes the comment and string-literal markers of one language.
// Markers are matched as raw byte sequences; all built-in markers are ASCII.
type Syntax struct {
	Name       string   `mapstructure:"name"`
	Extensions []string `mapstructure:"extensions"`
	BlockStart string   `mapstructure:"block_start"`
	BlockEnd   string   `mapstructure:"block_end"`
	Line       string   `mapstructure:"line"`
	// Strings holds the string/rune literal delimiter characters, e.g. `"'`.
	// Comment markers inside such literals are never recognized.
	Strings string `mapstructure:"strings"`
	// Escape is the escape character honored inside literals ("\" for C).
	Escape string `mapstructure:"escape"`
}

func (s Syntax) HasBlock() bool {
	return s.BlockStart != "" && s.BlockEnd != ""
}

func (s Syntax) HasLine() bool {
	return s.Line != ""
}

var builtinSyntaxes = []Syntax{
	{Name: "c", Extensions: []string{".c", ".h", ".cpp", ".cc", ".cxx", ".hpp", ".hh"}, BlockStart: "/*", BlockEnd: "*/", Line: "//", Strings: `"'`, Escape: `\`},
	{Name: "go", Extensions: []string{".go"}, BlockStart: "/*", BlockEnd: "*/", Line: "//", Strings: "\"'`", Escape: `\`},
	{Name: "js", Extensions: []string{".js", ".jsx", ".ts", ".tsx"}, BlockStart: "/*", BlockEnd: "*/", Line: "//", Strings: "\"'`", Escape: `\`},
	{Name: "css", Extensions: []string{".css"}, BlockStart: "/*", BlockEnd: "*/", Strings: `"'`, Escape: `\`},
	{Name: "shell", Extensions: []string{".sh", ".bash"}, Line: "#", Strings: `"'`, Escape: `\`},
	{Name: "python", Extensions: []string{".py"}, Line: "#", Strings: `"'`, Escape: `\`},
	{Name: "sql", Extensions: []string{".sql"}, BlockStart: "/*", BlockEnd: "*/", Line: "--", Strings: `'`},
}

var (
	syntaxMu     sync.RWMutex
	syntaxByName map[string]Syntax
	syntaxByExt  map[string]Syntax
)

func init() {
	syntaxByName = make(map[string]Syntax)
	syntaxByExt = make(map[string]Syntax)
	for _, s := range builtinSyntaxes {
		registerLocked(s)
	}
}

func registerLocked(s Syntax) {
	syntaxByName[strings.ToLower(s.Name)] = s
	for _, ext := range s.Extensions {
		syntaxByExt[strings.ToLower(ext)] = s
	}
}

// RegisterSyntax adds or replaces a language descriptor. Called from config
// initialization for user-defined languages.
func RegisterSyntax(s Syntax) {
	syntaxMu.Lock()
	defer syntaxMu.Unlock()
	registerLocked(s)
}

// SyntaxByName looks up a descriptor by language name (case-insensitive).
func SyntaxByName(name string) (Syntax, bool) {
	syntaxMu.RLock()
	defer syntaxMu.RUnlock()
	s, ok := syntaxByName[strings.ToLower(name)]
	return s, ok
}

// SyntaxForPath picks a descriptor from the file extension.
func SyntaxForPath(path string) (Syntax, bool) {
	syntaxMu.RLock()
	defer syntaxMu.RUnlock()
	s, ok := syntaxByExt[strings.ToLower(filepath.Ext(path))]
	return s, ok
}

// SyntaxNames lists the registered language names, sorted.
func SyntaxNames() []string {
	syntaxMu.RLock()
	defer syntaxMu.RUnlock()
	names := make([]string, 0, len(syntaxByName))
	for name := range syntaxByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
