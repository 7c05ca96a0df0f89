/*
Package tree implements a small general purpose tree of mutable nodes.

Visual trees and cloned trees are built on top of it by composition: a node
type includes a tree.Node and sets the payload to itself, as in

    type StyNode struct {
        tree.Node[*StyNode]
        ...
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
