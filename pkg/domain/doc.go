/*
Package domain contains the core domain models of the branchtale reader.

It defines the story graph records, the traversal path and the declarative view
model handed to presentation adapters. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Node: one narrative beat (NODES table).
  - Choice: a labelled edge from one node to another (CHOICES table).
  - PathEntry: a visited node tagged with the label of the choice that led to it.
  - View: what the host should render, either a ReaderView or a SummaryView.
*/
package domain
