/*
Package lazyseg implements a segment tree with lazy propagation, supporting
updates and queries over half-open index ranges in logarithmic time.

Segment Trees

A segment tree organizes a fixed-size sequence of elements as a complete
binary tree. Every node summarizes the elements of its span by an aggregate
value, and a query for a range [l, r) combines the aggregates of O(log N)
nodes whose spans tile the range.

Range updates are made cheap by laziness: an update covering a node's span
completely is recorded at that node as a pending value and applied to its
aggregate, but not to its descendants. Pending values are pushed one level
down only when an operation needs to descend below the node.

Algebras

The tree is agnostic of what its elements mean. Clients provide an Algebra,
which tells the tree how to combine two aggregates, how an update changes an
aggregate spanning k elements, and how two consecutive updates compose. The
classic variants (sums under increments, sums under assignment, minima under
increments) are available as pre-made algebras in sub-package algebra.

	tree, err := lazyseg.FromSlice(lazyseg.Config[int64]{
	    Algebra: algebra.SumAdd[int64]{},
	}, []int64{1, 2, 3, 4, 5})
	...
	err = tree.Update(1, 4, 10)       // add 10 to elements 1, 2, 3
	sum, err := tree.Query(0, 5)      // sum == 45

Storage

Nodes live in a flat arena of 4N slots. Node 1 is the root, children of node
v are 2v and 2v+1. Spans are always split at their midpoint.

A tree is not safe for concurrent use. Even queries may mutate internal
state, as they push pending values down the tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package lazyseg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
