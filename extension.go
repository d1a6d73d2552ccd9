// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// ExtCompiler compiles the portion of a schema map belonging to a
// custom, non-standard keyword set registered via Compiler.RegisterExtension
// (§6.5). Compile is called once per schema node that is a candidate for
// the extension (every object-shaped node); returning (nil, nil) means
// "nothing here for me".
type ExtCompiler interface {
	Compile(ctx *CompilerContext, m map[string]any) (ExtSchema, error)
}

// ExtSchema is the compiled form an ExtCompiler produces; Validate runs
// alongside this package's own keyword checks during Schema.Validate.
type ExtSchema interface {
	Validate(ctx *ValidationContext, v any) error
}

type extension struct {
	name     string
	compiler ExtCompiler
}

type extCompiled struct {
	name string
	ext  ExtSchema
}

// CompilerContext is handed to an ExtCompiler.Compile call so it can
// recurse into sibling schema values the same way this package's own
// keyword compilers do.
type CompilerContext struct {
	cc *compileCtx
}

// Compile compiles m (a nested schema value, which may also be a bool)
// as a full schema, resolving relative $ref/$id against the enclosing
// resource.
func (c *CompilerContext) Compile(m any) (*Schema, error) {
	return c.cc.compileValue(m, c.cc.curPtr)
}

// ValidationContext is handed to an ExtSchema.Validate call.
type ValidationContext struct {
	scope *rtScope
	path  path
}

// Error builds an *Error blaming the current instance location, for an
// extension keyword named kw.
func (v *ValidationContext) Error(kw string, format string, args ...any) *Error {
	return &Error{DocumentPath: v.path, Message: msgf(format, args...).String()}
}

// Group wraps causes under a single parent Error, for an extension that
// wants to report several nested failures at once.
func (v *ValidationContext) Group(parent *Error, causes ...*Error) *Error {
	return parent.wrap("", causes...)
}

// RegisterExtension installs an ExtCompiler under name; every compiled
// schema node calls it. This is the supported way to add project-specific
// keywords without forking the compiler.
func (c *Compiler) RegisterExtension(name string, compiler ExtCompiler) {
	if c.extensions == nil {
		c.extensions = map[string]extension{}
	}
	c.extensions[name] = extension{name: name, compiler: compiler}
}
