// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and fixed-point Money amounts. Both are immutable, carry
// their own validation, and must be created through their constructors --
// zero values fail Validate().
package kernel
