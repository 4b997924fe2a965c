/*
Package portfolio validates and stores portfolio documents.

A Manager sits between callers and a ports.DocumentStore: it validates every
write, serializes concurrent writes to the same ID with per-ID locks (optionally
backed by a ports.DistributedLocker shared across replicas) and reports what
changed on each store through lifecycle hooks.
*/
package portfolio
