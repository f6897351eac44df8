/*
Package xmlutil provides the XML value model used across the session
layer.

A Node is an in-memory XML element: a name, an ordered attribute list
and ordered content (nested elements and literal text). Nodes are built
by hand and serialized back to escaped XML text; there is no parsing
here.

The package also carries the attribute helpers shared by the protocol
handlers: lookup of an attribute value by exact name, extraction of a
string value from a raw fragment-valued attribute as produced by the
tokenizer, and the simplified namespace-prefix element name match.
*/
package xmlutil
