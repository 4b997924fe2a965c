// Package http exposes portfolio validation and storage over a chi router.
package http
