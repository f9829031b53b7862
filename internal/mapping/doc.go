// Package mapping provides the mapping description model, its YAML/JSON
// loader, and the checks run before a mapping is accepted.
//
// A mapping description pairs a source and a target message schema with a
// list of actions. Each action reads one or more source elements (attributes
// or constants) and writes exactly one target attribute:
//
//	source:
//	  headers:
//	    - {id: h1, name: correlationId, type: {name: string}}
//	  body:
//	    name: object
//	    schema:
//	      attributes:
//	        - {id: s1, name: amount, type: {name: number}}
//	target:
//	  headers:
//	    - {id: h2, name: traceId, required: true, type: {name: string}}
//	  body:
//	    name: object
//	    schema:
//	      attributes:
//	        - {id: t1, name: total, required: true, type: {name: number}}
//	constants:
//	  - {id: c1, name: region, valueSupplier: {kind: given, value: eu}}
//	actions:
//	  - id: a1
//	    sources: [header.h1]
//	    target: header.h2
//	  - sources:
//	      - {type: constant, name: region}
//	      - {type: attribute, kind: body, path: [s1]}
//	    target: {kind: body, path: [t1]}
//	    transformation:
//	      name: expression
//	      parameters: ["body.amount * 100"]
//
// # Reference shorthand
//
// Element references may be written as strings: "constant.<name>" for a
// constant and "<kind>.<id>.<id>..." for an attribute, where kind is header,
// property or body (case-insensitive).
//
// # Mandatory coverage
//
// ValidateCoverage computes the mandatory paths of the target schema (the id
// sequences locating required leaf attributes) and requires every one of them
// to be exactly the target path of some action. Check runs the structural
// checks on actions as well and reports everything as diagnostics.
package mapping
