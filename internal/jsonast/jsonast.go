/*
File    : noctis/internal/jsonast/jsonast.go
*/

// Package jsonast converts a parsed ast.Module into the language-neutral
// serializable form described in spec §6.2: a nested map using lowercase
// field names exactly as listed there (name, importable, depends, types,
// datatypes, functions).
package jsonast

import (
	"encoding/json"
	"io"

	"github.com/noctis-lang/noctis/ast"
)

// Encode writes m to w as indented JSON using the §6.2 field contract.
func Encode(w io.Writer, m *ast.Module) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ModuleOf(m))
}

// ModuleOf builds the serializable map form of a Module.
func ModuleOf(m *ast.Module) map[string]interface{} {
	depends := m.Depends
	if depends == nil {
		depends = []string{}
	}

	types := make([]interface{}, 0, len(m.Types))
	for _, td := range m.Types {
		types = append(types, map[string]interface{}{
			"name":    td.Name,
			"shadows": td.Shadows,
		})
	}

	datatypes := make([]interface{}, 0, len(m.Datatypes))
	for _, dd := range m.Datatypes {
		options := make([]interface{}, 0, len(dd.Options))
		for _, opt := range dd.Options {
			fields := make([]interface{}, 0, len(opt.Fields))
			for _, f := range opt.Fields {
				fields = append(fields, typeOf(f))
			}
			options = append(options, map[string]interface{}{
				"constructor": opt.Constructor,
				"fields":      fields,
			})
		}
		datatypes = append(datatypes, map[string]interface{}{
			"name":    dd.Name,
			"options": options,
		})
	}

	functions := make([]interface{}, 0, len(m.Functions))
	for _, fn := range m.Functions {
		functions = append(functions, functionOf(fn))
	}

	return map[string]interface{}{
		"name":       m.Name,
		"importable": m.Importable,
		"depends":    depends,
		"types":      types,
		"datatypes":  datatypes,
		"functions":  functions,
	}
}

func functionOf(fn *ast.Function) map[string]interface{} {
	var sig interface{}
	if fn.Signature != nil {
		params := make([]interface{}, 0, len(fn.Signature.Params))
		for _, t := range fn.Signature.Params {
			params = append(params, typeOf(t))
		}
		sig = map[string]interface{}{
			"name":   fn.Signature.Name,
			"params": params,
			"return": typeOf(fn.Signature.ReturnType),
		}
	}

	clauses := make([]interface{}, 0, len(fn.Clauses))
	for _, c := range fn.Clauses {
		params := c.Params
		if params == nil {
			params = []string{}
		}
		clauses = append(clauses, map[string]interface{}{
			"params": params,
			"body":   exprOf(c.Body),
		})
	}

	return map[string]interface{}{
		"name":      fn.Name,
		"private":   fn.Private,
		"docstring": fn.Docstring,
		"signature": sig,
		"clauses":   clauses,
	}
}

func typeOf(t *ast.Type) interface{} {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case ast.KindList:
		return map[string]interface{}{"kind": "list", "elem": typeOf(t.Elem)}
	case ast.KindOptional:
		return map[string]interface{}{"kind": "optional", "elem": typeOf(t.Elem)}
	case ast.KindErrorMsg:
		return map[string]interface{}{"kind": "error", "message": t.Message}
	case ast.KindGrouped:
		return map[string]interface{}{"kind": "grouped", "raw": t.Raw}
	case ast.KindNamed:
		return map[string]interface{}{"kind": "named", "name": t.Name}
	default:
		return map[string]interface{}{"kind": "primitive", "name": t.String()}
	}
}

// referenceName renders an ast.Reference as the lowercase tag used in the
// serialized tree.
func referenceName(ref ast.Reference) string {
	switch ref {
	case ast.RefFunctionCall:
		return "function"
	case ast.RefDatatypeOption:
		return "datatype_option"
	default:
		return "variable"
	}
}

func exprOf(e *ast.Expr) interface{} {
	if e == nil {
		return nil
	}

	switch e.Kind {
	case ast.ExprBinary:
		return map[string]interface{}{"kind": "binary", "op": e.Op, "lhs": exprOf(e.Lhs), "rhs": exprOf(e.Rhs)}
	case ast.ExprUnary:
		return map[string]interface{}{"kind": "unary", "op": e.Op, "operand": exprOf(e.Lhs)}
	case ast.ExprConditional:
		return map[string]interface{}{
			"kind":  "conditional",
			"cond":  exprOf(e.Cond),
			"true":  exprOf(e.True),
			"false": exprOf(e.False),
		}
	case ast.ExprCoalesce:
		return map[string]interface{}{"kind": "coalesce", "lhs": exprOf(e.Lhs), "rhs": exprOf(e.Rhs)}
	case ast.ExprCall:
		args := make([]interface{}, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, exprOf(a))
		}
		result := map[string]interface{}{
			"kind":      "call",
			"name":      e.Name,
			"reference": referenceName(e.Reference),
			"args":      args,
		}
		if e.Where != nil {
			result["where"] = functionOf(e.Where)
		}
		return result
	case ast.ExprListPair:
		return map[string]interface{}{"kind": "list_pair", "head": exprOf(e.Head), "tail": exprOf(e.Tail)}
	case ast.ExprInt:
		return map[string]interface{}{"kind": "int", "value": e.IntValue}
	case ast.ExprFloat:
		return map[string]interface{}{"kind": "float", "value": e.FloatValue}
	case ast.ExprString:
		return map[string]interface{}{"kind": "string", "value": e.StringValue}
	case ast.ExprBool:
		return map[string]interface{}{"kind": "bool", "value": e.BoolValue}
	case ast.ExprNothing:
		return map[string]interface{}{"kind": "nothing"}
	case ast.ExprAnything:
		return map[string]interface{}{"kind": "anything"}
	default:
		return map[string]interface{}{"kind": "unknown"}
	}
}
