/*
Package style holds CSS property values and declaration blocks.

Style values are kept in their textual form (type Property). A
declaration block (type Declarations) is an ordered set of property
declarations, each one with an optional "!important" priority. Declaration
blocks serve two purposes: as read-only snapshots of the computed style of
a visual node, and as the mutable style object of a cloned node.

Declaration lists in text form are parsed with douceur
(https://github.com/aymerick/douceur).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style
