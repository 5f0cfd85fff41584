/*
Package branchtale is an interactive branching narrative ("choose-your-own-adventure") reader.

A story is two flat tables: NODES (narrative beats) and CHOICES (labelled edges
between nodes). The reader starts at a canonical entry node, shows its text and
choices, follows the selected edge, and when a node offers no choices it presents
a chronological summary of the path taken, each step tagged with the choice that
led to it.

# Concept

The Engine separates the story graph (the Index, built once at load) from the
traversal state (the Controller) and from presentation. Every event produces a
declarative View that a host renders however it likes: terminal, HTTP, or an
agent over MCP.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/branchtale"
		"github.com/aretw0/branchtale/pkg/adapters/file"
	)

	func main() {
		ctx := context.Background()

		// Reads ./story/NODES.json and ./story/CHOICES.json
		eng, err := branchtale.New(ctx, file.New("./story"))
		if err != nil {
			log.Fatalf("%v\n\n%s", err, branchtale.LoadHint)
		}

		view := eng.View()
		fmt.Println(view.Reader.Text)
		for _, c := range view.Reader.Choices {
			fmt.Printf("%d) %s\n", c.Index+1, c.Label)
		}

		// Follow the first choice
		_ = eng.Select(ctx, 0)
	}
*/
package branchtale
