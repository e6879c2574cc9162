// Package model defines the core data types for the site catalog,
// most importantly the Site value object describing one website's
// username-probing metadata.
package model
