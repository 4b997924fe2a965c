// Package mcp exposes portfolio validation to Model Context Protocol clients.
package mcp
