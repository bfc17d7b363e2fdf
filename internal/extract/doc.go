// Package extract reads the declared relationships out of one parsed
// source file: the supertype, the override target, the generic requires
// and uses lists, and the five role-categorized collections. Shorthand
// names in categorized collections are resolved against the application
// namespace; wildcard names pass through untouched for the graph builder
// to expand.
package extract
