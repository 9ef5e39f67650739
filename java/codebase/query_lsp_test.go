package codebase

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestTextDocumentCodeActionOffersImportQuickFix(t *testing.T) {
	c := New("/tmp/codeaction_test")

	depPath := "/tmp/codeaction_test/src/util/Box.java"
	c.UpdateFile(depPath, []byte(`package util;

public class Box {
}`))

	mainPath := "/tmp/codeaction_test/src/app/Main.java"
	mainSource := `package app;

public class Main {
  private Box item;
}`
	c.UpdateFile(mainPath, []byte(mainSource))

	ls := &LSPServer{codebase: c}

	// "Box" sits on line 4 (1-based), columns 11-13; LSP positions are
	// 0-based line / 0-based character.
	params := &protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: pathToURI(mainPath)},
		Range: protocol.Range{
			Start: protocol.Position{Line: 3, Character: 11},
			End:   protocol.Position{Line: 3, Character: 14},
		},
	}

	result, err := ls.textDocumentCodeAction(nil, params)
	if err != nil {
		t.Fatalf("textDocumentCodeAction returned error: %v", err)
	}

	actions, ok := result.([]protocol.CodeAction)
	if !ok || len(actions) == 0 {
		t.Fatalf("expected at least one code action, got %+v", result)
	}

	found := false
	for _, a := range actions {
		if a.Title == "Import util.Box" {
			found = true
			if a.Edit == nil || len(a.Edit.Changes[pathToURI(mainPath)]) != 1 {
				t.Fatalf("expected one text edit on %s, got %+v", mainPath, a.Edit)
			}
		}
	}
	if !found {
		t.Fatalf("expected an 'Import util.Box' quick fix among %+v", actions)
	}
}

func TestTextDocumentCodeActionSkipsAlreadyImported(t *testing.T) {
	c := New("/tmp/codeaction_test2")

	depPath := "/tmp/codeaction_test2/src/util/Box.java"
	c.UpdateFile(depPath, []byte(`package util;

public class Box {
}`))

	mainPath := "/tmp/codeaction_test2/src/app/Main.java"
	mainSource := `package app;

import util.Box;

public class Main {
  private Box item;
}`
	c.UpdateFile(mainPath, []byte(mainSource))

	ls := &LSPServer{codebase: c}

	params := &protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: pathToURI(mainPath)},
		Range: protocol.Range{
			Start: protocol.Position{Line: 5, Character: 11},
			End:   protocol.Position{Line: 5, Character: 14},
		},
	}

	result, err := ls.textDocumentCodeAction(nil, params)
	if err != nil {
		t.Fatalf("textDocumentCodeAction returned error: %v", err)
	}
	if result != nil {
		t.Fatalf("expected no code actions for an already-imported type, got %+v", result)
	}
}

func TestTextDocumentFormattingReplacesWholeDocument(t *testing.T) {
	c := New("/tmp/formatting_test")

	path := "/tmp/formatting_test/src/app/Main.java"
	source := "package app;\n\npublic class Main {\n}\n"
	c.UpdateFile(path, []byte(source))

	ls := &LSPServer{codebase: c}

	params := &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: pathToURI(path)},
	}

	edits, err := ls.textDocumentFormatting(nil, params)
	if err != nil {
		t.Fatalf("textDocumentFormatting returned error: %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected exactly one whole-document edit, got %d", len(edits))
	}

	want := wholeDocumentRange([]byte(source))
	if edits[0].Range != want {
		t.Fatalf("expected edit range %+v, got %+v", want, edits[0].Range)
	}
}

func TestTextDocumentFormattingSkipsUnparseableFile(t *testing.T) {
	c := New("/tmp/formatting_test2")

	path := "/tmp/formatting_test2/src/app/Main.java"
	c.UpdateFile(path, []byte("not valid java {{{"))

	ls := &LSPServer{codebase: c}

	params := &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: pathToURI(path)},
	}

	edits, err := ls.textDocumentFormatting(nil, params)
	if err != nil {
		t.Fatalf("textDocumentFormatting returned error: %v", err)
	}
	if edits != nil {
		t.Fatalf("expected no edits for an unparseable file, got %+v", edits)
	}
}
