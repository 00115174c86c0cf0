// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package paramlist holds a configuration document as an ordered sequence of
named parameter groups.

Each group holds parameters that are either typed leaves (see paramvalue) or
containers of nested parameters. A group name may repeat in a parsed
document; Groups returns every instance in document order and
SortByOrderKey orders them by their "index" child.

Documents are read from XML (root element, group elements, parameter
elements with an optional "value" and "type" attribute) or from YAML
(top-level mapping of groups). Lookups of absent groups or parameters return
a NotFound failure; only ValueOrDefault substitutes a default.
*/
package paramlist
