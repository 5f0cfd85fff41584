/*
Package dsl provides a fluent Go builder for branchtale stories.

It produces the same NODES and CHOICES rows a spreadsheet export would, which
is handy for tests, embedded stories and generated content.

Example usage:

	b := dsl.New()

	b.Add("A01").
		Text("A fork in the road.").
		Choice("Go left", "A02").
		Choice("Go right", "A03")

	b.Add("A02").Type("ending").Text("A quiet lake.")
	b.Add("A03").Type("ending").Text("A busy town.")

	src, err := b.Build() // *memory.Source, usable with branchtale.New
*/
package dsl
