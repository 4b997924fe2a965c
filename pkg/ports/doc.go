/*
Package ports defines the driven ports (interfaces) of DevFolio.

# Key Interfaces

  - DocumentStore: persists validated portfolios (memory, file, Redis, PostgreSQL).
  - DocumentSource: reads raw portfolios for validation (Loam repository, memory).
  - DistributedLocker: serializes writes to one document across instances.

RunDocumentStoreContract and the tests subpackage hold reusable suites that
every adapter runs against itself.
*/
package ports
