// Package types defines the creature entity, its kind and gender
// enumerations, and the standard errors shared by the elevage packages.
package types
