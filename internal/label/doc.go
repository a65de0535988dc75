/*
Package label provides the textual identities of pipeline stages.

A label is the string under which a stage is inserted into a sub-graph and by
which inclusion settings refer to it. Labels are derived mechanically from a
declaration identifier (`EndMainPassPostProcessing` becomes
`end_main_pass_post_processing`) unless one is given explicitly.

Inside a sub-graph, labels are interned into compact IDs so that graph
structure does not depend on string identity, while the public, string-keyed
settings contract is preserved.
*/
package label
