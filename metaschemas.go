// Copyright 2017 Santhosh Kumar Tekuri. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

// The metaschemas below are deliberately abbreviated relative to the
// documents published at json-schema.org: they describe the shape of
// the keywords this package actually implements without reproducing
// every recursive $ref in the official text. The Compiler does not
// validate a schema against them before compiling it; they are served
// only when a $ref (or a Compile call) names a metaschema URL. See
// DESIGN.md.

const metaschemaDraft4 = `{
	"id": "http://json-schema.org/draft-04/schema#",
	"type": ["object", "boolean"],
	"properties": {
		"id": {"type": "string"},
		"$schema": {"type": "string"},
		"title": {"type": "string"},
		"description": {"type": "string"},
		"default": {},
		"multipleOf": {"type": "number", "exclusiveMinimum": true, "minimum": 0},
		"maximum": {"type": "number"},
		"exclusiveMaximum": {"type": "boolean", "default": false},
		"minimum": {"type": "number"},
		"exclusiveMinimum": {"type": "boolean", "default": false},
		"maxLength": {"type": "integer", "minimum": 0},
		"minLength": {"type": "integer", "minimum": 0, "default": 0},
		"pattern": {"type": "string"},
		"additionalItems": {"type": ["boolean", "object"], "default": {}},
		"items": {"default": {}},
		"maxItems": {"type": "integer", "minimum": 0},
		"minItems": {"type": "integer", "minimum": 0, "default": 0},
		"uniqueItems": {"type": "boolean", "default": false},
		"maxProperties": {"type": "integer", "minimum": 0},
		"minProperties": {"type": "integer", "minimum": 0, "default": 0},
		"required": {"type": "array", "minItems": 1, "uniqueItems": true},
		"additionalProperties": {"type": ["boolean", "object"], "default": {}},
		"definitions": {"type": "object"},
		"properties": {"type": "object"},
		"patternProperties": {"type": "object"},
		"dependencies": {"type": "object"},
		"enum": {"type": "array", "minItems": 1, "uniqueItems": true},
		"type": {},
		"format": {"type": "string"},
		"allOf": {"type": "array", "minItems": 1},
		"anyOf": {"type": "array", "minItems": 1},
		"oneOf": {"type": "array", "minItems": 1},
		"not": {}
	},
	"dependencies": {"exclusiveMaximum": ["maximum"], "exclusiveMinimum": ["minimum"]}
}`

const metaschemaDraft6 = `{
	"$id": "http://json-schema.org/draft-06/schema#",
	"type": ["object", "boolean"],
	"properties": {
		"$id": {"type": "string"},
		"$schema": {"type": "string"},
		"$ref": {"type": "string"},
		"title": {"type": "string"},
		"description": {"type": "string"},
		"default": {},
		"examples": {"type": "array"},
		"multipleOf": {"type": "number", "exclusiveMinimum": 0},
		"maximum": {"type": "number"},
		"exclusiveMaximum": {"type": "number"},
		"minimum": {"type": "number"},
		"exclusiveMinimum": {"type": "number"},
		"maxLength": {"type": "integer", "minimum": 0},
		"minLength": {"type": "integer", "minimum": 0, "default": 0},
		"pattern": {"type": "string"},
		"additionalItems": {"default": {}},
		"items": {"default": {}},
		"maxItems": {"type": "integer", "minimum": 0},
		"minItems": {"type": "integer", "minimum": 0, "default": 0},
		"uniqueItems": {"type": "boolean", "default": false},
		"contains": {"default": {}},
		"maxProperties": {"type": "integer", "minimum": 0},
		"minProperties": {"type": "integer", "minimum": 0, "default": 0},
		"required": {"type": "array", "minItems": 1, "uniqueItems": true},
		"additionalProperties": {"default": {}},
		"definitions": {"type": "object"},
		"properties": {"type": "object"},
		"patternProperties": {"type": "object"},
		"dependencies": {"type": "object"},
		"propertyNames": {"default": {}},
		"const": {},
		"enum": {"type": "array", "minItems": 1, "uniqueItems": true},
		"type": {},
		"format": {"type": "string"},
		"allOf": {"type": "array", "minItems": 1},
		"anyOf": {"type": "array", "minItems": 1},
		"oneOf": {"type": "array", "minItems": 1},
		"not": {}
	}
}`

const metaschemaDraft7 = `{
	"$id": "http://json-schema.org/draft-07/schema#",
	"type": ["object", "boolean"],
	"properties": {
		"$id": {"type": "string"},
		"$schema": {"type": "string"},
		"$ref": {"type": "string"},
		"$comment": {"type": "string"},
		"title": {"type": "string"},
		"description": {"type": "string"},
		"default": {},
		"readOnly": {"type": "boolean", "default": false},
		"examples": {"type": "array"},
		"multipleOf": {"type": "number", "exclusiveMinimum": 0},
		"maximum": {"type": "number"},
		"exclusiveMaximum": {"type": "number"},
		"minimum": {"type": "number"},
		"exclusiveMinimum": {"type": "number"},
		"maxLength": {"type": "integer", "minimum": 0},
		"minLength": {"type": "integer", "minimum": 0, "default": 0},
		"pattern": {"type": "string"},
		"additionalItems": {"default": {}},
		"items": {"default": {}},
		"maxItems": {"type": "integer", "minimum": 0},
		"minItems": {"type": "integer", "minimum": 0, "default": 0},
		"uniqueItems": {"type": "boolean", "default": false},
		"contains": {"default": {}},
		"maxProperties": {"type": "integer", "minimum": 0},
		"minProperties": {"type": "integer", "minimum": 0, "default": 0},
		"required": {"type": "array", "minItems": 1, "uniqueItems": true},
		"additionalProperties": {"default": {}},
		"definitions": {"type": "object"},
		"properties": {"type": "object"},
		"patternProperties": {"type": "object"},
		"dependencies": {"type": "object"},
		"propertyNames": {"default": {}},
		"const": {},
		"enum": {"type": "array", "minItems": 1, "uniqueItems": true},
		"type": {},
		"format": {"type": "string"},
		"contentMediaType": {"type": "string"},
		"contentEncoding": {"type": "string"},
		"if": {"default": {}},
		"then": {"default": {}},
		"else": {"default": {}},
		"allOf": {"type": "array", "minItems": 1},
		"anyOf": {"type": "array", "minItems": 1},
		"oneOf": {"type": "array", "minItems": 1},
		"not": {}
	}
}`

const metaschemaDraft2019 = `{
	"$id": "https://json-schema.org/draft/2019-09/schema",
	"$vocabulary": {
		"https://json-schema.org/draft/2019-09/vocab/core": true,
		"https://json-schema.org/draft/2019-09/vocab/applicator": true,
		"https://json-schema.org/draft/2019-09/vocab/validation": true,
		"https://json-schema.org/draft/2019-09/vocab/meta-data": true,
		"https://json-schema.org/draft/2019-09/vocab/format": false,
		"https://json-schema.org/draft/2019-09/vocab/content": true
	},
	"type": ["object", "boolean"],
	"properties": {
		"$id": {"type": "string"},
		"$schema": {"type": "string"},
		"$anchor": {"type": "string"},
		"$ref": {"type": "string"},
		"$recursiveRef": {"type": "string"},
		"$recursiveAnchor": {"type": "boolean", "default": false},
		"$vocabulary": {"type": "object"},
		"$comment": {"type": "string"},
		"$defs": {"type": "object"},
		"title": {"type": "string"},
		"description": {"type": "string"},
		"default": {},
		"deprecated": {"type": "boolean", "default": false},
		"readOnly": {"type": "boolean", "default": false},
		"writeOnly": {"type": "boolean", "default": false},
		"examples": {"type": "array"},
		"multipleOf": {"type": "number", "exclusiveMinimum": 0},
		"maximum": {"type": "number"},
		"exclusiveMaximum": {"type": "number"},
		"minimum": {"type": "number"},
		"exclusiveMinimum": {"type": "number"},
		"maxLength": {"type": "integer", "minimum": 0},
		"minLength": {"type": "integer", "minimum": 0, "default": 0},
		"pattern": {"type": "string"},
		"additionalItems": {"default": {}},
		"unevaluatedItems": {"default": {}},
		"items": {"default": {}},
		"maxItems": {"type": "integer", "minimum": 0},
		"minItems": {"type": "integer", "minimum": 0, "default": 0},
		"uniqueItems": {"type": "boolean", "default": false},
		"contains": {"default": {}},
		"maxContains": {"type": "integer", "minimum": 0},
		"minContains": {"type": "integer", "minimum": 0},
		"maxProperties": {"type": "integer", "minimum": 0},
		"minProperties": {"type": "integer", "minimum": 0, "default": 0},
		"required": {"type": "array", "minItems": 1, "uniqueItems": true},
		"additionalProperties": {"default": {}},
		"unevaluatedProperties": {"default": {}},
		"properties": {"type": "object"},
		"patternProperties": {"type": "object"},
		"dependentRequired": {"type": "object"},
		"dependentSchemas": {"type": "object"},
		"propertyNames": {"default": {}},
		"const": {},
		"enum": {"type": "array", "minItems": 1, "uniqueItems": true},
		"type": {},
		"format": {"type": "string"},
		"contentMediaType": {"type": "string"},
		"contentEncoding": {"type": "string"},
		"contentSchema": {"default": {}},
		"if": {"default": {}},
		"then": {"default": {}},
		"else": {"default": {}},
		"allOf": {"type": "array", "minItems": 1},
		"anyOf": {"type": "array", "minItems": 1},
		"oneOf": {"type": "array", "minItems": 1},
		"not": {}
	}
}`

const metaschemaDraft2020 = `{
	"$id": "https://json-schema.org/draft/2020-12/schema",
	"$vocabulary": {
		"https://json-schema.org/draft/2020-12/vocab/core": true,
		"https://json-schema.org/draft/2020-12/vocab/applicator": true,
		"https://json-schema.org/draft/2020-12/vocab/unevaluated": true,
		"https://json-schema.org/draft/2020-12/vocab/validation": true,
		"https://json-schema.org/draft/2020-12/vocab/meta-data": true,
		"https://json-schema.org/draft/2020-12/vocab/format-annotation": true,
		"https://json-schema.org/draft/2020-12/vocab/content": true
	},
	"type": ["object", "boolean"],
	"properties": {
		"$id": {"type": "string"},
		"$schema": {"type": "string"},
		"$anchor": {"type": "string"},
		"$ref": {"type": "string"},
		"$dynamicRef": {"type": "string"},
		"$dynamicAnchor": {"type": "string"},
		"$vocabulary": {"type": "object"},
		"$comment": {"type": "string"},
		"$defs": {"type": "object"},
		"prefixItems": {"type": "array", "minItems": 1},
		"items": {"default": true},
		"contains": {"default": true},
		"additionalProperties": {"default": true},
		"properties": {"type": "object"},
		"patternProperties": {"type": "object"},
		"dependentRequired": {"type": "object"},
		"dependentSchemas": {"type": "object"},
		"propertyNames": {"default": true},
		"unevaluatedItems": {"default": true},
		"unevaluatedProperties": {"default": true},
		"propertyDependencies": {"type": "object"},
		"type": {},
		"enum": {"type": "array", "minItems": 1, "uniqueItems": true},
		"const": {},
		"multipleOf": {"type": "number", "exclusiveMinimum": 0},
		"maximum": {"type": "number"},
		"exclusiveMaximum": {"type": "number"},
		"minimum": {"type": "number"},
		"exclusiveMinimum": {"type": "number"},
		"maxLength": {"type": "integer", "minimum": 0},
		"minLength": {"type": "integer", "minimum": 0, "default": 0},
		"pattern": {"type": "string"},
		"maxItems": {"type": "integer", "minimum": 0},
		"minItems": {"type": "integer", "minimum": 0, "default": 0},
		"uniqueItems": {"type": "boolean", "default": false},
		"maxContains": {"type": "integer", "minimum": 0},
		"minContains": {"type": "integer", "minimum": 0},
		"maxProperties": {"type": "integer", "minimum": 0},
		"minProperties": {"type": "integer", "minimum": 0, "default": 0},
		"required": {"type": "array", "minItems": 1, "uniqueItems": true},
		"title": {"type": "string"},
		"description": {"type": "string"},
		"default": {},
		"deprecated": {"type": "boolean", "default": false},
		"readOnly": {"type": "boolean", "default": false},
		"writeOnly": {"type": "boolean", "default": false},
		"examples": {"type": "array"},
		"format": {"type": "string"},
		"contentEncoding": {"type": "string"},
		"contentMediaType": {"type": "string"},
		"contentSchema": {"default": true},
		"if": {"default": true},
		"then": {"default": true},
		"else": {"default": true},
		"allOf": {"type": "array", "minItems": 1},
		"anyOf": {"type": "array", "minItems": 1},
		"oneOf": {"type": "array", "minItems": 1},
		"not": {"default": true}
	}
}`
