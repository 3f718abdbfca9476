package jsx

import "strings"

// ExecuteBanner opens every canonical execute block. Its presence is
// also how the pipeline recognizes an already-normalized file.
const ExecuteBanner = "// -------------------------------------------------------------\n" +
	"// Execute\n" +
	"// -------------------------------------------------------------"

// Default guard messages, taken from the generated validateEnvironment
// wording so hand-written and generated scripts alert identically.
const (
	defaultDocumentAlert   = "alert('Please open a document first.');"
	defaultSelectionAlert  = "alert('Please select at least one object.');"
	defaultValidationAlert = "alert(SCRIPT.name + '\\n\\n' + validation.message);"
)

// BuildExecuteBlock synthesizes the canonical trailing execute block
// for a guard kind. The output is deliberately not a self-invoking
// wrapper: guards become top-level conditionals, which is what makes a
// second normalization pass a no-op. Output is deterministic and ends
// with a newline.
func BuildExecuteBlock(kind GuardKind, msgs Messages, errorTitle string) string {
	var b strings.Builder
	b.WriteString(ExecuteBanner)
	b.WriteString("\n\n")

	switch kind {
	case GuardValidationFunction:
		msg := msgs.Validation
		if msg == "" {
			msg = defaultValidationAlert
		}
		b.WriteString("var validation = validateEnvironment();\n")
		b.WriteString("if (validation.valid) {\n")
		writeTryMain(&b, 1, errorTitle)
		b.WriteString("} else {\n")
		writeStatements(&b, 1, msg)
		b.WriteString("}\n")

	case GuardDocumentAndSelection:
		docMsg := orDefault(msgs.Document, defaultDocumentAlert)
		selMsg := orDefault(msgs.Selection, defaultSelectionAlert)
		b.WriteString("if (app.documents.length > 0) {\n")
		b.WriteString("    if (app.activeDocument.selection.length > 0) {\n")
		writeTryMain(&b, 2, errorTitle)
		b.WriteString("    } else {\n")
		writeStatements(&b, 2, selMsg)
		b.WriteString("    }\n")
		b.WriteString("} else {\n")
		writeStatements(&b, 1, docMsg)
		b.WriteString("}\n")

	case GuardDocumentOnly:
		b.WriteString("if (app.documents.length > 0) {\n")
		writeTryMain(&b, 1, errorTitle)
		b.WriteString("} else {\n")
		writeStatements(&b, 1, orDefault(msgs.Document, defaultDocumentAlert))
		b.WriteString("}\n")

	case GuardSelectionOnly:
		b.WriteString("if (app.activeDocument.selection.length > 0) {\n")
		writeTryMain(&b, 1, errorTitle)
		b.WriteString("} else {\n")
		writeStatements(&b, 1, orDefault(msgs.Selection, defaultSelectionAlert))
		b.WriteString("}\n")

	default:
		writeTryMain(&b, 0, errorTitle)
	}
	return b.String()
}

// writeTryMain emits the try/catch around main() at the given indent
// level, reporting failures through the fixed error call.
func writeTryMain(b *strings.Builder, level int, errorTitle string) {
	pad := strings.Repeat("    ", level)
	title := strings.ReplaceAll(errorTitle, `'`, `\'`)
	b.WriteString(pad + "try {\n")
	b.WriteString(pad + "    main();\n")
	b.WriteString(pad + "} catch (err) {\n")
	b.WriteString(pad + "    AIS.Error.show('" + title + "', err);\n")
	b.WriteString(pad + "}\n")
}

// writeStatements re-indents preserved guard statements into a branch.
func writeStatements(b *strings.Builder, level int, stmts string) {
	pad := strings.Repeat("    ", level)
	for _, line := range strings.Split(stmts, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(pad + line + "\n")
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
