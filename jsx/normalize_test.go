package jsx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A legacy script the way they actually look: doc comment, stray
// header elements, SCRIPT object, main, and a guarded entry wrapper.
const legacyScript = `/**
 * Rotate Selection
 */
` + PreferenceStatement + `
` + TargetPragma + `

var SCRIPT = {
    name: 'Rotate Selection',
    version: '1.0.0'
};

function main() {
    app.activeDocument.selection[0].rotate(45);
}

(function () {
    if (app.documents.length === 0) {
        alert('Please open a document first.');
        return;
    }
    if (app.activeDocument.selection.length === 0) {
        alert('Please select at least one object.');
        return;
    }
    main();
})();
`

func TestNormalize_LegacyScript(t *testing.T) {
	got, changed := Normalize(legacyScript)
	require.True(t, changed)

	// Header invariant: exactly one of each element, canonical order.
	assert.Equal(t, 1, strings.Count(got, TargetPragma))
	assert.Equal(t, 1, strings.Count(got, LoaderSnippet))
	assert.Equal(t, 1, strings.Count(got, PreferenceStatement))
	assert.Less(t, strings.Index(got, TargetPragma), strings.Index(got, LoaderSnippet))

	// Wrapper removal: no self-invoking wrapper left, one execute block.
	assert.NotContains(t, got, "(function")
	assert.Equal(t, 1, strings.Count(got, ExecuteBanner))

	// Message preservation: the guard literals survive verbatim.
	assert.Contains(t, got, "alert('Please open a document first.');")
	assert.Contains(t, got, "alert('Please select at least one object.');")

	// Error title comes from SCRIPT.name.
	assert.Contains(t, got, "AIS.Error.show('Rotate Selection', err);")

	// The body survives.
	assert.Contains(t, got, "app.activeDocument.selection[0].rotate(45);")
}

func TestNormalize_Idempotent(t *testing.T) {
	once, changed := Normalize(legacyScript)
	require.True(t, changed)

	twice, changed := Normalize(once)
	assert.False(t, changed, "second run must be a no-op")
	assert.Equal(t, once, twice)
}

func TestNormalize_CRLFWithHelperIdempotent(t *testing.T) {
	// A Windows-authored script with a self-invoking helper before the
	// entry wrapper. The entry wrapper must be the one replaced, the
	// helper must survive, and the second run must not append a second
	// execute block.
	text := "var SCRIPT = {\r\n    name: 'Palette',\r\n};\r\n\r\n" +
		"(function () {\r\n    setupPalette();\r\n})();\r\n\r\n" +
		"function main() {\r\n    run();\r\n}\r\n\r\n" +
		"(function () {\r\n    main();\r\n})();\r\n"

	once, changed := Normalize(text)
	require.True(t, changed)
	assert.Equal(t, 1, strings.Count(once, ExecuteBanner))
	assert.Contains(t, once, "setupPalette();")
	assert.NotContains(t, once, "(function () {\r\n    main();")

	twice, changed := Normalize(once)
	assert.False(t, changed, "second run must be a no-op")
	assert.Equal(t, once, twice)
	assert.Equal(t, 1, strings.Count(twice, ExecuteBanner))
}

func TestNormalize_NoWrapperAppendsPlainBlock(t *testing.T) {
	// Scenario: a script with no entry wrapper at all gets a guard-free
	// execute block appended and is otherwise untouched.
	text := canonicalTrio + "\n\nfunction main() {\n    doWork();\n}\n"
	got, changed := Normalize(text)
	require.True(t, changed)

	assert.Contains(t, got, "function main() {\n    doWork();\n}")
	assert.Contains(t, got, ExecuteBanner)
	assert.Contains(t, got, "try {\n    main();\n}")
	assert.Contains(t, got, "AIS.Error.show('"+DefaultErrorTitle+"', err);")
	// Guard-free: the block starts right at the try.
	assert.Contains(t, got, ExecuteBanner+"\n\ntry {")
}

func TestNormalize_CanonicalFileUnchanged(t *testing.T) {
	text := "/** doc */\n" + canonicalTrio + "\n\nfunction main() {}\n\n" +
		BuildExecuteBlock(GuardNone, Messages{}, "X")
	got, changed := Normalize(text)
	assert.False(t, changed)
	assert.Equal(t, text, got)
}

func TestNormalize_GuardKindFidelity(t *testing.T) {
	docOnly := canonicalTrio + `

function main() {}

(function () {
    if (app.documents.length === 0) {
        alert('Nothing open.');
        return;
    }
    main();
})();
`
	got, changed := Normalize(docOnly)
	require.True(t, changed)
	assert.Contains(t, got, "if (app.documents.length > 0) {")
	assert.Contains(t, got, "alert('Nothing open.');")
	assert.NotContains(t, got, "selection.length")
}

func TestNormalize_ValidationWrapper(t *testing.T) {
	text := canonicalTrio + "\n\nvar SCRIPT = { name: 'Align' };\n\nfunction main() {}\n\n" + validationWrapper
	got, changed := Normalize(text)
	require.True(t, changed)

	assert.NotContains(t, got, "(function")
	assert.Contains(t, got, "var validation = validateEnvironment();")
	assert.Contains(t, got, `alert(SCRIPT.name + '\n\n' + validation.message);`)
	assert.Contains(t, got, "AIS.Error.show('Align', err);")

	_, changed = Normalize(got)
	assert.False(t, changed)
}

func TestNormalize_EmptyFile(t *testing.T) {
	got, changed := Normalize("")
	require.True(t, changed)
	assert.True(t, strings.HasPrefix(got, TargetPragma))
	assert.Contains(t, got, ExecuteBanner)

	_, changed = Normalize(got)
	assert.False(t, changed)
}
