// Package generic implements a providers.Resolver that works across the
// supported family of novel mirror sites. It locates chapter lists and
// chapter bodies using DOM-first heuristics with configurable selector
// tables and ordered fallback strategies.
package generic
