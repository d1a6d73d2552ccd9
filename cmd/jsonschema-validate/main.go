// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsonschema-validate is a reference wiring of Compiler and
// URLLoader, not a production CLI: it exists to exercise the library
// end to end, the same way the teacher's own cmd/jsonschema does.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schemaflow/jsonschema"
)

// fileLoader resolves $ref/$schema URLs that are bare filesystem paths,
// relative to the working directory the command was run from.
type fileLoader struct{}

func (fileLoader) Load(url string) (any, error) {
	f, err := os.Open(url)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jsonschema.DecodeJSON(f)
}

func main() {
	assertFormat := flag.Bool("assert-format", false, "treat format as an assertion, not an annotation, on 2019-09+")
	assertContent := flag.Bool("assert-content", false, "treat contentEncoding/contentMediaType/contentSchema as assertions")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: jsonschema-validate [flags] <schema.json> <instance.json>")
		os.Exit(2)
	}
	schemaPath, instancePath := args[0], args[1]

	c := jsonschema.NewCompiler()
	c.LoadURL = fileLoader{}
	c.AssertFormat = *assertFormat
	c.AssertContent = *assertContent

	schema, err := c.Compile(schemaPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "schema is invalid:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Open(instancePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	doc, err := jsonschema.DecodeJSON(f)
	f.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "instance is not valid JSON:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := schema.Validate(doc); err != nil {
		fmt.Fprintln(os.Stderr, "instance does not conform to schema:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
