package sfc

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/viant/uicover/inspector/graph"
)

// importExpr matches static imports when the logic region cannot be parsed
var importExpr = regexp.MustCompile(`import\s+(?:(?:type\s+)?(?:\{[^}]*\}|\*\s+as\s+\w+|\w+)(?:\s*,\s*\{[^}]*\})?\s+from\s+)?["']([^"']+)["']`)

func language(lang string) *sitter.Language {
	if lang == "ts" {
		return typescript.GetLanguage()
	}
	return javascript.GetLanguage()
}

// parseImports extracts import and re-export declarations from the logic region
func parseImports(ctx context.Context, logic, lang string) ([]graph.Import, error) {
	src := []byte(logic)
	parser := sitter.NewParser()
	parser.SetLanguage(language(lang))
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse logic region: %w", err)
	}
	rootNode := tree.RootNode()
	var imports []graph.Import
	for _, node := range findImportNodes(rootNode) {
		imports = append(imports, parseImportDeclaration(node, src)...)
	}
	if len(imports) == 0 && rootNode.HasError() {
		return lexicalImports(logic), nil
	}
	return imports, nil
}

// findImportNodes finds top level import and re-export statements
func findImportNodes(rootNode *sitter.Node) []*sitter.Node {
	var nodes []*sitter.Node
	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		child := rootNode.NamedChild(j)
		switch child.Type() {
		case "import_statement", "export_statement":
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// importSource returns unquoted module path of an import or export node
func importSource(node *sitter.Node, src []byte) string {
	source := node.ChildByFieldName("source")
	if source == nil {
		for j := 0; j < int(node.NamedChildCount()); j++ {
			if child := node.NamedChild(j); child.Type() == "string" {
				source = child
				break
			}
		}
	}
	if source == nil {
		return ""
	}
	return strings.Trim(source.Content(src), "'\"`")
}

// parseImportDeclaration returns one import per local binding, or a single unnamed import
func parseImportDeclaration(node *sitter.Node, src []byte) []graph.Import {
	importPath := importSource(node, src)
	if importPath == "" {
		return nil
	}
	var names []string
	if node.Type() == "import_statement" {
		for j := 0; j < int(node.NamedChildCount()); j++ {
			child := node.NamedChild(j)
			if child.Type() == "import_clause" {
				names = append(names, importClauseNames(child, src)...)
			}
		}
	}
	if len(names) == 0 {
		return []graph.Import{{Path: importPath}}
	}
	result := make([]graph.Import, 0, len(names))
	for _, name := range names {
		result = append(result, graph.Import{Name: name, Path: importPath})
	}
	return result
}

func importClauseNames(clause *sitter.Node, src []byte) []string {
	var names []string
	for k := 0; k < int(clause.NamedChildCount()); k++ {
		child := clause.NamedChild(k)
		switch child.Type() {
		case "identifier":
			names = append(names, child.Content(src))
		case "namespace_import":
			for l := 0; l < int(child.NamedChildCount()); l++ {
				if id := child.NamedChild(l); id.Type() == "identifier" {
					names = append(names, id.Content(src))
				}
			}
		case "named_imports":
			for l := 0; l < int(child.NamedChildCount()); l++ {
				specifier := child.NamedChild(l)
				if specifier.Type() != "import_specifier" {
					continue
				}
				name := specifier.ChildByFieldName("alias")
				if name == nil {
					name = specifier.ChildByFieldName("name")
				}
				if name != nil {
					names = append(names, name.Content(src))
				}
			}
		}
	}
	return names
}

// lexicalImports matches imports with a regular expression
func lexicalImports(logic string) []graph.Import {
	var imports []graph.Import
	for _, match := range importExpr.FindAllStringSubmatch(logic, -1) {
		imports = append(imports, graph.Import{Path: match[1]})
	}
	return imports
}
