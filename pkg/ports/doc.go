/*
Package ports defines the driven and driving ports (interfaces) of the branchtale reader.

These interfaces decouple the traversal core from external implementations, allowing
the reader to be fed from various table sources and driven by various frontends.

# Key Interfaces

  - TableSource: Responsible for retrieving the NODES and CHOICES tables.
  - Reader: The event surface (view, select, restart) consumed by adapters.
*/
package ports
