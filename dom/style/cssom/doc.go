/*
Package cssom provides an abstraction of CSS stylesheets.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Building
visual trees from static HTML (see package htmltree) requires computing
the style of every element from the stylesheets of a document. CSS
handling is de-coupled from parsing by introducing interfaces StyleSheet
and Rule. A concrete implementation, based on douceur, may be found in
sub-package douceuradapter.

Selector matching is not part of this package; clients use
https://godoc.org/github.com/andybalholm/cascadia to compile the selectors
of rules.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
