package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordcheck/pkg/schema"
	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

const signupYAML = `
rules:
  - rule: presence
    path: email
  - rule: format
    path: email
    preset: email
  - rule: numericality
    path: [profile, age]
    only_integer: true
    gte: 18
  - rule: inclusion
    path: role
    in: [admin, user]
  - rule: length
    path: [address, zip]
    is: 5
    allow_nil: true
  - rule: acceptance
    path: terms
`

const signupJSON = `{
  "rules": [
    {"rule": "presence", "path": "email"},
    {"rule": "format", "path": "email", "preset": "email"},
    {"rule": "numericality", "path": ["profile", "age"], "only_integer": true, "gte": 18},
    {"rule": "inclusion", "path": "role", "in": ["admin", "user"]},
    {"rule": "length", "path": ["address", "zip"], "is": 5, "allow_nil": true},
    {"rule": "acceptance", "path": "terms"}
  ]
}`

func TestParsers(t *testing.T) {
	t.Parallel()

	parsers := map[string]struct {
		parser  schema.Parser
		content string
	}{
		"yaml": {schema.NewYAMLParser(), signupYAML},
		"json": {schema.NewJSONParser(), signupJSON},
	}

	for name, tc := range parsers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := tc.parser.Parse(context.Background(), []byte(tc.content))
			require.NoError(t, err)
			require.Len(t, doc.Rules, 6)
			assert.Equal(t, schema.Path{"profile", "age"}, doc.Rules[2].Path)
			assert.Equal(t, schema.Path{"email"}, doc.Rules[0].Path)
			require.NotNil(t, doc.Rules[2].GTE)
			assert.InDelta(t, 18.0, *doc.Rules[2].GTE, 0)

			set, err := schema.Compile(doc)
			require.NoError(t, err)
			assert.Equal(t, 6, set.Len())

			ok, report := set.Validate(validator.Record{
				"email":   "user@example.com",
				"profile": map[string]any{"age": 30},
				"role":    "admin",
				"terms":   true,
			})
			assert.True(t, ok)
			assert.Empty(t, report)

			ok, report = set.Validate(validator.Record{
				"email":   "nope",
				"profile": map[string]any{"age": 16.5},
				"role":    "guest",
				"address": map[string]any{"zip": "123"},
			})
			assert.False(t, ok)
			assert.Equal(t, validator.Report{
				"email":       {"has incorrect format"},
				"profile.age": {"should be an integer", "should be greater than or equal to 18"},
				"role":        {"must be one of: admin, user"},
				"address.zip": {"must be 5 characters long"},
				"terms":       {"can't be blank"},
			}, report)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := schema.NewYAMLParser().Parse(context.Background(), []byte("rules: [\n"))
		assert.ErrorIs(t, err, schema.ErrFailedToParseYAML)
	})

	t.Run("rejects unknown yaml fields", func(t *testing.T) {
		_, err := schema.NewYAMLParser().Parse(context.Background(), []byte("rules:\n  - rule: presence\n    path: a\n    greater_than: 1\n"))
		assert.ErrorIs(t, err, schema.ErrFailedToParseYAML)
	})

	t.Run("rejects invalid path", func(t *testing.T) {
		_, err := schema.NewYAMLParser().Parse(context.Background(), []byte("rules:\n  - rule: presence\n    path: {a: b}\n"))
		assert.ErrorIs(t, err, schema.ErrFailedToParseYAML)

		_, err = schema.NewJSONParser().Parse(context.Background(), []byte(`{"rules":[{"rule":"presence","path":1}]}`))
		assert.ErrorIs(t, err, schema.ErrFailedToParseJSON)
	})

	t.Run("rejects unknown json fields", func(t *testing.T) {
		_, err := schema.NewJSONParser().Parse(context.Background(), []byte(`{"rules":[{"rule":"presence","path":"a","typo":true}]}`))
		assert.ErrorIs(t, err, schema.ErrFailedToParseJSON)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := schema.NewYAMLParser().Parse(ctx, []byte(signupYAML))
		assert.ErrorIs(t, err, schema.ErrYAMLParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)

		_, err = schema.NewJSONParser().Parse(ctx, []byte(signupJSON))
		assert.ErrorIs(t, err, schema.ErrJSONParsingCancelled)
	})
}

func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	is := func(n int) *int { return &n }

	tests := []struct {
		name   string
		doc    schema.Document
		target error
	}{
		{"empty document", schema.Document{}, schema.ErrNoRules},
		{"unknown rule", schema.Document{Rules: []schema.Definition{{Rule: "uniqueness", Path: schema.Path{"email"}}}}, schema.ErrUnknownRule},
		{"unknown preset", schema.Document{Rules: []schema.Definition{{Rule: "format", Path: schema.Path{"id"}, Preset: "isbn"}}}, schema.ErrUnknownPreset},
		{"format and preset", schema.Document{Rules: []schema.Definition{{Rule: "format", Path: schema.Path{"zip"}, Format: `^\d{5}$`, Preset: "email"}}}, schema.ErrConflictingFormat},
		{"bad within", schema.Document{Rules: []schema.Definition{{Rule: "length", Path: schema.Path{"code"}, Within: []int{1}}}}, schema.ErrInvalidRange},
		{"format without pattern", schema.Document{Rules: []schema.Definition{{Rule: "format", Path: schema.Path{"zip"}}}}, validator.ErrMissingPattern},
		{"broken pattern", schema.Document{Rules: []schema.Definition{{Rule: "format", Path: schema.Path{"zip"}, Format: "("}}}, validator.ErrInvalidPattern},
		{"missing path", schema.Document{Rules: []schema.Definition{{Rule: "presence"}}}, validator.ErrEmptyPath},
		{"negative length", schema.Document{Rules: []schema.Definition{{Rule: "length", Path: schema.Path{"code"}, Is: is(-2)}}}, validator.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := schema.Compile(tt.doc)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, schema.ErrFailedToCompile)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("reports every failing definition", func(t *testing.T) {
		_, err := schema.Compile(schema.Document{Rules: []schema.Definition{
			{Rule: "presence", Path: schema.Path{"ok"}},
			{Rule: "bogus", Path: schema.Path{"a"}},
			{Rule: "inclusion", Path: schema.Path{"b"}},
		}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rule 1")
		assert.Contains(t, err.Error(), "rule 2")
		assert.ErrorIs(t, err, validator.ErrMissingMembers)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	set, err := schema.Load(context.Background(), schema.NewYAMLParser(), []byte(signupYAML))
	require.NoError(t, err)
	assert.True(t, validator.Invalid(set, validator.Record{}))
}

func TestParserFor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"rules.yaml", "rules.YML", "dir/rules.json"} {
		p, err := schema.ParserFor(name)
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}

	_, err := schema.ParserFor("rules.toml")
	assert.ErrorIs(t, err, schema.ErrUnsupportedExtension)

	p, err := schema.ParserFor("rules.json")
	require.NoError(t, err)
	assert.IsType(t, &schema.JSONParser{}, p)
}

func TestCompile_Presets(t *testing.T) {
	t.Parallel()

	content := []byte(`{"rules": [
		{"rule": "format", "path": "slug", "preset": "slug"},
		{"rule": "format", "path": "version", "preset": "SemVer"},
		{"rule": "format", "path": "host", "preset": "domain", "message": "is not a host name"}
	]}`)
	set, err := schema.Load(context.Background(), schema.NewJSONParser(), content)
	require.NoError(t, err)

	ok, report := set.Validate(validator.Record{"slug": "my-post", "version": "1.2.3", "host": "localhost"})
	assert.False(t, ok)
	assert.Equal(t, validator.Report{"host": {"is not a host name"}}, report)
}
