package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"

	"modelmap/internal/diagnostic"
	"modelmap/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and builds a model graph.
type Analyzer struct {
	graph    *model.Graph
	pending  []edge
	observer diagnostic.Observer
}

// edge is a dependency whose target may live in a package processed later.
type edge struct {
	from   model.NodeID
	target *types.TypeName
}

// NewAnalyzer creates a new Analyzer. A nil observer discards warnings.
func NewAnalyzer(obs diagnostic.Observer) *Analyzer {
	return &Analyzer{
		graph:    model.NewGraph(),
		observer: diagnostic.OrDiscard(obs),
	}
}

// LoadPackages loads the specified packages and builds the model graph.
// Patterns are standard Go package patterns (e.g., "./examples/purchase").
func (a *Analyzer) LoadPackages(patterns ...string) (*model.Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	if err := a.link(); err != nil {
		return nil, err
	}

	return a.graph, nil
}

// Graph returns the current model graph.
func (a *Analyzer) Graph() *model.Graph {
	return a.graph
}

// processPackage adds the types of a loaded package in declaration order.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	a.graph.AddPackage(pkg.PkgPath)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				typeName, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok || !typeName.Exported() || typeName.IsAlias() {
					continue
				}

				if err := a.addType(pkg.PkgPath, typeName); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addType adds a named type, its properties and its global element.
func (a *Analyzer) addType(pkgPath string, typeName *types.TypeName) error {
	name := typeName.Name()

	switch ut := typeName.Type().Underlying().(type) {
	case *types.Basic:
		_, err := a.graph.AddType(pkgPath, name, model.NewQName("", name))
		return err

	case *types.Struct:
		return a.addStruct(pkgPath, name, ut)

	default:
		// interfaces, maps, funcs and channels have no XML shape
		return nil
	}
}

func (a *Analyzer) addStruct(pkgPath, name string, st *types.Struct) error {
	var element model.QName

	for i := range st.NumFields() {
		field := st.Field(i)
		if field.Name() == "XMLName" {
			tag := ParseXMLTag(reflect.StructTag(st.Tag(i)), "")
			element = tag.Name
		}
	}

	typeNode, err := a.graph.AddType(pkgPath, name, model.NewQName(element.Space, name))
	if err != nil {
		return err
	}

	if element.Local != "" {
		if owner := a.elementOwner(pkgPath, element); owner != "" {
			a.observer.Observe(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Code:     "duplicate_element",
				Message:  fmt.Sprintf("Type %s redeclares the element %s of %s; keeping the first declaration.", name, element, owner),
				Package:  pkgPath,
				Subject:  element.String(),
			})

			element = model.QName{}
		}
	}

	if element.Local != "" {
		el, err := a.graph.AddElement(pkgPath, element)
		if err != nil {
			return err
		}

		if err := a.graph.AddDependency(el.ID, typeNode.ID); err != nil {
			return err
		}
	}

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() || field.Name() == "XMLName" {
			continue
		}

		tag := ParseXMLTag(reflect.StructTag(st.Tag(i)), field.Name())
		if tag.Skip {
			continue
		}

		if field.Embedded() {
			a.later(typeNode.ID, field.Type())
			continue
		}

		prop, err := a.graph.AddProperty(pkgPath, name, field.Name(), tag.Name, tag.Category)
		if err != nil {
			return err
		}

		a.later(prop.ID, field.Type())
	}

	return nil
}

// elementOwner returns the type of pkgPath already declaring element, or "".
func (a *Analyzer) elementOwner(pkgPath string, element model.QName) string {
	el := a.graph.Lookup(model.KindElement, pkgPath, element.String())
	if el == nil {
		return ""
	}

	for _, dep := range a.graph.DependenciesOf(el.ID) {
		if dep.Kind() == model.KindType {
			return dep.ID.Key
		}
	}

	return element.String()
}

// later records a dependency from a node to the named type behind t.
func (a *Analyzer) later(from model.NodeID, t types.Type) {
	if target := namedTarget(t); target != nil {
		a.pending = append(a.pending, edge{from: from, target: target})
	}
}

// link resolves deferred edges once every package is in the graph. Targets
// outside the loaded packages are dropped.
func (a *Analyzer) link() error {
	for _, e := range a.pending {
		if e.target.Pkg() == nil {
			continue
		}

		to := a.graph.Lookup(model.KindType, e.target.Pkg().Path(), e.target.Name())
		if to == nil {
			continue
		}

		if err := a.graph.AddDependency(e.from, to.ID); err != nil {
			return err
		}
	}

	a.pending = nil

	return nil
}

// namedTarget unwraps pointers, slices and arrays down to a named type.
func namedTarget(t types.Type) *types.TypeName {
	for {
		switch tt := types.Unalias(t).(type) {
		case *types.Pointer:
			t = tt.Elem()
		case *types.Slice:
			t = tt.Elem()
		case *types.Array:
			t = tt.Elem()
		case *types.Named:
			return tt.Obj()
		default:
			return nil
		}
	}
}
