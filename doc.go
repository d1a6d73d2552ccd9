// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema implements the JSON Schema specification across
// drafts 3, 4, 6, 7, 2019-09, 2020-12 and draft-next.
//
// A [Schema] is produced by compiling a schema document with a
// [Compiler]. Compilation builds a tree of compiled checks; validating
// a document walks that tree, threading a runtime context that
// accumulates the evaluated/matched annotations required by
// unevaluatedProperties, unevaluatedItems and the conditional
// applicators.
//
// The compiler is draft-aware: each schema resource picks a dialect
// (an ordered set of active keyword factories) from its $schema and,
// for 2019-09 and later, from a $vocabulary map at the resource's own
// top level; the $vocabulary of the metaschema that $schema names is
// not read. Mixing
// drafts within one document graph, via $ref into a differently
// versioned resource, is supported.
//
// Remote $ref resolution, schema loading over the network or
// filesystem, and command-line use are intentionally left to the
// embedder: Compiler.LoadURL accepts any [URLLoader] implementation.
package jsonschema
