// Package template builds an example XML document for a data type.
//
// Every type is visited once: arrays contribute a single item, compound
// types contribute every member as siblings and primitives contribute an
// empty text placeholder. Object attributes become elements, except that an
// attribute named "@x" becomes the XML attribute x of the enclosing element
// and an attribute named "#text" becomes the element's text. Namespace
// bindings found in the xmlNamespaces metadata of an attribute's resolved
// type are declared on the element created for that attribute and stay in
// scope below it. A type that contains itself has no finite example and is
// reported as *resolve.CycleError.
package template
