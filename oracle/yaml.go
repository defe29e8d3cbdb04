package oracle

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// dynamicKeysAnnotation is the comment marker a mapping node carries to
// tell the bridge its keys are data, not schema (SPEC_FULL.md §4.9).
const dynamicKeysAnnotation = "@dynamic-keys"

// FromYAMLTypeHints walks a YAML document (the same AST magicschema walks
// to infer schemas) looking for "# @dynamic-keys" annotation comments on
// mapping nodes, for projects that describe their sample shape in YAML
// rather than JSON Schema.
func FromYAMLTypeHints(doc []byte) (Oracle, error) {
	file, err := parser.ParseBytes(doc, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing yaml type hints: %w", err)
	}

	set := PathSet{}

	for _, d := range file.Docs {
		if d.Body == nil {
			continue
		}

		walkYAML(d.Body, "", set)
	}

	return set, nil
}

func walkYAML(node ast.Node, path string, set PathSet) {
	mapping, ok := node.(*ast.MappingNode)
	if !ok {
		if mvn, ok := node.(*ast.MappingValueNode); ok {
			walkYAMLValues([]*ast.MappingValueNode{mvn}, path, set)
		}

		return
	}

	walkYAMLValues(mapping.Values, path, set)
}

func walkYAMLValues(values []*ast.MappingValueNode, path string, set PathSet) {
	for _, mvn := range values {
		key := mvn.Key.String()
		childPath := joinPath(path, key)

		if hasDynamicKeysComment(mvn) {
			set[childPath] = true
		}

		walkYAML(mvn.Value, childPath, set)
	}
}

func hasDynamicKeysComment(mvn *ast.MappingValueNode) bool {
	comment := mvn.GetComment()
	if comment == nil {
		return false
	}

	for _, c := range comment.Comments {
		if strings.Contains(c.String(), dynamicKeysAnnotation) {
			return true
		}
	}

	return false
}
