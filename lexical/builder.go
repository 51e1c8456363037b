package lexical

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// reTokenID gates which token names are emitted as constants. Names that do
// not form a valid identifier are skipped, not rejected.
var reTokenID = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z_0-9]*$`)

const defaultModName = "lexer_l"

// LexerBuilder generates a self-contained Go module from a lexer definition,
// optionally synchronizing the rule ids with a grammar-side token mapping
// first.
type LexerBuilder struct {
	modName                    string
	ruleIDs                    map[string]TokenID
	storageType                string
	allowMissingTermsInLexer   bool
	allowMissingTokensInParser bool
}

type BuilderOption func(b *LexerBuilder)

// ModName sets the package name of the generated module. When it is left
// unset, ProcessFile derives one from the input file name.
func ModName(name string) BuilderOption {
	return func(b *LexerBuilder) {
		b.modName = name
	}
}

// RuleIDs sets the token-name-to-id mapping the rules are synchronized
// against. Without it, reconciliation is skipped entirely.
func RuleIDs(ids map[string]TokenID) BuilderOption {
	return func(b *LexerBuilder) {
		b.ruleIDs = ids
	}
}

// StorageType sets the Go type of the emitted token-id constants. It must be
// an unsigned integer type wide enough to hold every id. The default is
// uint32.
func StorageType(goType string) BuilderOption {
	return func(b *LexerBuilder) {
		b.storageType = goType
	}
}

// AllowMissingTermsInLexer controls whether tokens used in the grammar but
// not defined in the lexer are tolerated. The default is false: such a token
// can never be produced, so the build fails.
func AllowMissingTermsInLexer(allow bool) BuilderOption {
	return func(b *LexerBuilder) {
		b.allowMissingTermsInLexer = allow
	}
}

// AllowMissingTokensInParser controls whether tokens defined in the lexer
// but not used in the grammar are tolerated. The default is true: lexers
// legitimately define tokens, reserved words for example, that a grammar
// never references.
func AllowMissingTokensInParser(allow bool) BuilderOption {
	return func(b *LexerBuilder) {
		b.allowMissingTokensInParser = allow
	}
}

func NewLexerBuilder(opts ...BuilderOption) *LexerBuilder {
	b := &LexerBuilder{
		storageType:                "uint32",
		allowMissingTokensInParser: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MissingError reports the reconciliation mismatches a builder's policy
// elevated to a failure. Only the sides configured as fatal are populated.
type MissingError struct {
	MissingFromLexer  map[string]struct{}
	MissingFromParser map[string]struct{}
}

func (e *MissingError) Error() string {
	var parts []string
	if len(e.MissingFromLexer) > 0 {
		parts = append(parts, fmt.Sprintf("%v token(s) used in the grammar are not defined in the lexer", len(e.MissingFromLexer)))
	}
	if len(e.MissingFromParser) > 0 {
		parts = append(parts, fmt.Sprintf("%v token(s) defined in the lexer are not used in the grammar", len(e.MissingFromParser)))
	}
	return strings.Join(parts, "; ")
}

const lexerTemplate = `// Code generated by lrgen. DO NOT EDIT.

package {{ .ModName }}

import "github.com/nihei9/lrgen/lexical"

// Lexerdef returns the lexer definition this module was generated from.
func Lexerdef() *lexical.LexerDef {
	def, err := lexical.NewLexerDef([]*lexical.Rule{
{{- range .Rules }}
		{TokID: {{ .TokID }}, Name: {{ .Name }}, Pattern: {{ .Pattern }}},
{{- end }}
	})
	if err != nil {
		panic(err)
	}
	return def
}
{{- if .Consts }}

const (
{{- range .Consts }}
	T_{{ .Name }} {{ $.StorageType }} = {{ .ID }}
{{- end }}
)
{{- end }}
`

type templateRule struct {
	TokID   TokenID
	Name    string
	Pattern string
}

type templateConst struct {
	Name string
	ID   TokenID
}

// Generate renders the generated module for def. The output is a pure
// function of the rule list, the rule-id mapping, and the builder options:
// two calls with the same logical input produce identical bytes.
func (b *LexerBuilder) Generate(def *LexerDef) ([]byte, error) {
	modName := b.modName
	if modName == "" {
		modName = defaultModName
	}

	rules := make([]*templateRule, 0, len(def.Rules()))
	for _, r := range def.Rules() {
		rules = append(rules, &templateRule{
			TokID:   r.TokID,
			Name:    strconv.Quote(r.Name),
			Pattern: strconv.Quote(r.Pattern),
		})
	}

	var consts []*templateConst
	for name, id := range b.ruleIDs {
		if !reTokenID.MatchString(name) {
			continue
		}
		consts = append(consts, &templateConst{
			Name: strings.ToUpper(name),
			ID:   id,
		})
	}
	sort.Slice(consts, func(i, j int) bool {
		return consts[i].Name < consts[j].Name
	})

	tmpl, err := template.New("lexer").Parse(lexerTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		ModName     string
		StorageType string
		Rules       []*templateRule
		Consts      []*templateConst
	}{
		ModName:     modName,
		StorageType: b.storageType,
		Rules:       rules,
		Consts:      consts,
	})
	if err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format the generated source: %w", err)
	}
	return src, nil
}

// Process reconciles def against the configured rule-id mapping, enforces
// the two missing-token policies, and writes the generated module to
// outPath. When the candidate output is byte-identical to an existing file
// the write is skipped, so an unchanged artifact never triggers a downstream
// rebuild. On a policy violation any artifact already at outPath is removed
// before the error is returned; a stale module must not survive a failed
// build.
//
// The returned sets are nil when no rule-id mapping was configured, and
// non-nil, possibly empty, when reconciliation ran.
func (b *LexerBuilder) Process(def *LexerDef, outPath string) (map[string]struct{}, map[string]struct{}, error) {
	var missingFromLexer, missingFromParser map[string]struct{}
	if b.ruleIDs != nil {
		missingFromLexer, missingFromParser = def.SetRuleIDs(b.ruleIDs)

		missErr := &MissingError{}
		if !b.allowMissingTermsInLexer && len(missingFromLexer) > 0 {
			missErr.MissingFromLexer = missingFromLexer
		}
		if !b.allowMissingTokensInParser && len(missingFromParser) > 0 {
			missErr.MissingFromParser = missingFromParser
		}
		if missErr.MissingFromLexer != nil || missErr.MissingFromParser != nil {
			os.Remove(outPath)
			return missingFromLexer, missingFromParser, missErr
		}
	}

	src, err := b.Generate(def)
	if err != nil {
		return missingFromLexer, missingFromParser, err
	}

	if cur, err := os.ReadFile(outPath); err == nil && bytes.Equal(cur, src) {
		return missingFromLexer, missingFromParser, nil
	}
	err = os.WriteFile(outPath, src, 0644)
	if err != nil {
		return missingFromLexer, missingFromParser, err
	}
	return missingFromLexer, missingFromParser, nil
}

// ProcessFile parses the lexical specification at inPath and processes it
// into a generated module at outPath.
func (b *LexerBuilder) ProcessFile(inPath string, outPath string) (map[string]struct{}, map[string]struct{}, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	def, err := ParseLexSpec(f)
	if err != nil {
		return nil, nil, err
	}

	if b.modName == "" {
		b.modName = ModNameFromPath(inPath)
	}
	return b.Process(def, outPath)
}

// ModNameFromPath derives a module name from a file path: the leaf name,
// minus its extensions, with an `_l` suffix. `a/b.l` becomes `b_l`.
func ModNameFromPath(path string) string {
	stem := filepath.Base(path)
	for {
		next := strings.TrimSuffix(stem, filepath.Ext(stem))
		if next == stem || next == "" {
			break
		}
		stem = next
	}

	var b strings.Builder
	for i, c := range stem {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			c = '_'
		}
		b.WriteRune(c)
	}
	return b.String() + "_l"
}
