// Package expr compiles the mapping expression language into the target
// tool's expression format.
//
// Grammar, lowest precedence first; every binary level is left-associative:
//
//	expression     = or
//	or             = and ( "||" and )*
//	and            = equality ( "&&" equality )*
//	equality       = comparison ( ( "==" | "!=" ) comparison )*
//	comparison     = additive ( ( "<" | "<=" | ">" | ">=" ) additive )*
//	additive       = multiplicative ( ( "+" | "-" ) multiplicative )*
//	multiplicative = unary ( ( "*" | "/" | "%" ) unary )*
//	unary          = ( "!" | "-" ) unary | primary
//	primary        = "(" expression ")" | call | attributeRef | constantRef | literal
//	call           = name "(" [ expression ( "," expression )* ] ")"
//	attributeRef   = kind "." element ( "." element )*
//	constantRef    = "constant" "." name
//	literal        = "null" | number | string | "true" | "false"
//
// kind is one of header, property or body and is matched case-insensitively.
// Path elements and constant names may contain backslash escapes; "\_" is an
// empty escape and any other escaped character stands for itself.
//
// Compilation parses the source into a tree and re-renders it with canonical
// spacing. Every attribute or constant reference is replaced by ${id}, where
// id is computed by a caller-supplied Resolver.
package expr
