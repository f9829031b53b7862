// Package datatype provides the structural type model used to describe
// message headers, properties and bodies.
//
// A DataType is one of ten kinds:
//
//	null | boolean | number | string | array | object |
//	reference | allOf | anyOf | oneOf
//
// Every kind may declare local TypeDefinitions, which are visible to the
// type itself and everything nested below it, and carries an open Metadata
// bag. Reference types name a definition by id and must be resolved
// against a definition table before use (see package resolve).
//
// # Wire format
//
// Types are decoded from YAML or JSON documents. The discriminator field is
// "name":
//
//	name: object
//	schema:
//	  id: order
//	  attributes:
//	    - id: a1
//	      name: customer
//	      required: true
//	      type: {name: reference, definitionId: customer}
//	definitions:
//	  - id: customer
//	    name: Customer
//	    type: {name: string}
//	metadata:
//	  dataFormat: xml
//	  xmlNamespaces:
//	    - {alias: ns, uri: "urn:example"}
package datatype
